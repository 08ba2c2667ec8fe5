package restapi

import (
	"encoding/json"
	"net/http"

	"mobilefood.datasf.org/internal/models"
)

// sendRows writes the matched rows as a bare JSON array of field-maps.
func (api *RestAPI) sendRows(w http.ResponseWriter, r *http.Request, rows []models.Row) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(rows)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
