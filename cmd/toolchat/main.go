package main

import "github.com/cleitonmarx/symbiont-ai-toolchat/internal/app"

func main() {
	err := app.NewToolChatApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
