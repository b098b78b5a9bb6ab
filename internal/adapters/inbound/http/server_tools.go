package http

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http/gen"
)

// ListTools returns all tools of the caller, including inactive ones.
func (api ToolChatServer) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := api.ToolRegistry.List(r.Context(), ownerFrom(r.Context()))
	if err != nil {
		api.Logger.Printf("ToolChatServer: error listing tools: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := gen.ListToolsResp{Items: make([]gen.Tool, 0, len(tools))}
	for _, t := range tools {
		resp.Items = append(resp.Items, toTool(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// UpdateTool toggles the active flag of one of the caller's tools.
func (api ToolChatServer) UpdateTool(w http.ResponseWriter, r *http.Request, name gen.ToolName) {
	var req gen.UpdateToolJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(gen.BADREQUEST, fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if req.Active == nil {
		respondError(w, newErrorResp(gen.BADREQUEST, "active is required"))
		return
	}

	found, err := api.ToolRegistry.SetActive(r.Context(), ownerFrom(r.Context()), name, *req.Active)
	if err != nil {
		api.Logger.Printf("ToolChatServer: error updating tool: %v", err)
		respondError(w, toError(err))
		return
	}
	if !found {
		respondError(w, newErrorResp(gen.NOTFOUND, fmt.Sprintf("tool '%s' not found", name)))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTool removes one of the caller's tools.
func (api ToolChatServer) DeleteTool(w http.ResponseWriter, r *http.Request, name gen.ToolName) {
	api.deleteTool(w, r, ownerFrom(r.Context()), name)
}

// AdminDeleteTool removes a tool of any owner. It requires the administrator token
// and is disabled when no token is configured.
func (api ToolChatServer) AdminDeleteTool(w http.ResponseWriter, r *http.Request, ownerId string, name gen.ToolName) {
	if api.AdminToken == "" || api.AdminToken == "-" {
		respondError(w, newErrorResp(gen.FORBIDDEN, "admin endpoints are disabled"))
		return
	}
	token := r.Header.Get(AdminTokenHeader)
	if subtle.ConstantTimeCompare([]byte(token), []byte(api.AdminToken)) != 1 {
		respondError(w, newErrorResp(gen.UNAUTHORIZED, "invalid admin token"))
		return
	}
	api.deleteTool(w, r, ownerId, name)
}

func (api ToolChatServer) deleteTool(w http.ResponseWriter, r *http.Request, ownerID, name string) {
	found, err := api.ToolRegistry.Delete(r.Context(), ownerID, name)
	if err != nil {
		api.Logger.Printf("ToolChatServer: error deleting tool: %v", err)
		respondError(w, toError(err))
		return
	}
	if !found {
		respondError(w, newErrorResp(gen.NOTFOUND, fmt.Sprintf("tool '%s' not found", name)))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
