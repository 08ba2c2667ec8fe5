package restapi

import (
	"encoding/json"
	"net/http"

	"mobilefood.datasf.org/internal/logging"
)

// detailResponse is the error body for 404 and 500 responses: a single
// human-readable "detail" field, matching the contract of the city's
// original service.
type detailResponse struct {
	Detail string `json:"detail"`
}

// notFoundResponse sends a 404 with the endpoint's fixed detail message.
// A query with zero matches is an expected outcome, not a fault, so it is
// never logged as an error.
func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request, detail string) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	err := json.NewEncoder(w).Encode(detailResponse{Detail: detail})
	if err != nil {
		api.Logger.Error("failed to encode not found response", "error", err)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusInternalServerError)

	encoderErr := json.NewEncoder(w).Encode(detailResponse{Detail: "internal server error"})
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}
