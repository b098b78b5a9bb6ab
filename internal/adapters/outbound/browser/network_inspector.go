package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// MaxRecordedRequests bounds the number of requests reported per inspection.
const MaxRecordedRequests = 30

// RequestRecord is one outbound request observed while loading a page.
type RequestRecord struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

// browseFunc loads target and reports every outbound request to onRequest.
type browseFunc func(ctx context.Context, target string, onRequest func(RequestRecord)) error

// ChromeNetworkInspector records the requests a page makes using a throw-away headless Chrome.
type ChromeNetworkInspector struct {
	navigationTimeout time.Duration
	settleDelay       time.Duration
	browse            browseFunc
}

// NewChromeNetworkInspector creates a new ChromeNetworkInspector.
func NewChromeNetworkInspector(navigationTimeout, settleDelay time.Duration, noSandbox bool) ChromeNetworkInspector {
	return ChromeNetworkInspector{
		navigationTimeout: navigationTimeout,
		settleDelay:       settleDelay,
		browse:            chromeBrowser(settleDelay, noSandbox),
	}
}

// Inspect navigates to target and returns the first recorded requests as a JSON array.
func (i ChromeNetworkInspector) Inspect(ctx context.Context, target string) domain.ToolOutput {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateURL(target); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return failure(err)
	}

	navCtx, cancel := context.WithTimeout(spanCtx, i.navigationTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		records = make([]RequestRecord, 0, MaxRecordedRequests)
	)
	err := i.browse(navCtx, target, func(r RequestRecord) {
		mu.Lock()
		defer mu.Unlock()
		if len(records) < MaxRecordedRequests {
			records = append(records, r)
		}
	})

	mu.Lock()
	defer mu.Unlock()
	span.SetAttributes(attribute.Int("network.requests", len(records)))

	if err != nil {
		timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(navCtx.Err(), context.DeadlineExceeded)
		if !timedOut || len(records) == 0 {
			telemetry.RecordErrorAndStatus(span, err)
			return failure(err)
		}
	}

	b, err := json.Marshal(records)
	if telemetry.RecordErrorAndStatus(span, err) {
		return failure(err)
	}
	return domain.ToolOutput{Content: string(b)}
}

func validateURL(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q, only http and https are allowed", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url has no host")
	}
	return nil
}

func failure(err error) domain.ToolOutput {
	return domain.ToolOutput{
		Content: "network inspection failed: " + err.Error(),
		Failed:  true,
	}
}

// chromeBrowser returns a browseFunc that starts a fresh headless Chrome per call.
// The allocator removes its temporary profile directory when the context is canceled.
func chromeBrowser(settleDelay time.Duration, noSandbox bool) browseFunc {
	return func(ctx context.Context, target string, onRequest func(RequestRecord)) error {
		opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if noSandbox {
			opts = append(opts, chromedp.NoSandbox)
		}

		allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
		defer cancelAlloc()

		browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
		defer cancelBrowser()

		chromedp.ListenTarget(browserCtx, func(ev any) {
			if e, ok := ev.(*network.EventRequestWillBeSent); ok && e.Request != nil {
				onRequest(RequestRecord{URL: e.Request.URL, Method: e.Request.Method})
			}
		})

		return chromedp.Run(browserCtx,
			network.Enable(),
			chromedp.Navigate(target),
			chromedp.Sleep(settleDelay),
		)
	}
}

// InitNetworkInspector registers the ChromeNetworkInspector as the domain.NetworkInspector.
type InitNetworkInspector struct {
	NavigationTimeout time.Duration `config:"BROWSER_NAVIGATION_TIMEOUT" default:"15s"`
	SettleDelay       time.Duration `config:"BROWSER_SETTLE_DELAY" default:"1s"`
	NoSandbox         string        `config:"BROWSER_NO_SANDBOX" default:"false"`
}

// Initialize registers the inspector in the dependency container.
func (i InitNetworkInspector) Initialize(ctx context.Context) (context.Context, error) {
	noSandbox, err := strconv.ParseBool(i.NoSandbox)
	if err != nil {
		return ctx, fmt.Errorf("invalid BROWSER_NO_SANDBOX value %q: %w", i.NoSandbox, err)
	}
	depend.Register[domain.NetworkInspector](NewChromeNetworkInspector(i.NavigationTimeout, i.SettleDelay, noSandbox))
	return ctx, nil
}
