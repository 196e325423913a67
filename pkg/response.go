package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSONResponse encodes v and writes it with the given status,
// or answers with 500 if v cannot be encoded.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal json response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

func WriteJSONResponseOK(w http.ResponseWriter, v any) {
	WriteJSONResponse(w, http.StatusOK, v)
}
