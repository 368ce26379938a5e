package handler

import (
	"net/http"
	"time"
)

// PredictCrowdLevel handles GET /crowd-level/predict.
// Required query parameters: location and date (YYYY-MM-DD).
func (s *Server) PredictCrowdLevel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	location := q.Get("location")
	if location == "" {
		writeBadRequest(w, "location is required")
		return
	}

	rawDate := q.Get("date")
	if rawDate == "" {
		writeBadRequest(w, "date is required")
		return
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		writeBadRequest(w, "date must be formatted as YYYY-MM-DD")
		return
	}

	prediction, err := s.crowds.Predict(r.Context(), location, date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prediction)
}
