package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http/gen"
)

// RunChatTurn runs one chat turn for the calling owner. A failing tool is not an
// API error; its failure is narrated in the assistant reply.
func (api ToolChatServer) RunChatTurn(w http.ResponseWriter, r *http.Request) {
	var req gen.RunChatTurnJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(gen.BADREQUEST, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	input, err := toChatTurnInput(ownerFrom(r.Context()), req)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	out, err := api.RunChatTurnUseCase.Execute(r.Context(), input)
	if err != nil {
		api.Logger.Printf("ToolChatServer: error running chat turn: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatTurnResponse(out))
}
