package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes payload as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes an {"error": ...} body. Used for 400- and 500-class results.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Message writes a {"message": ...} body. Used for confirmations and 404s.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}
