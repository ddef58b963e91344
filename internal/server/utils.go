package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, logger logrus.FieldLogger, v any) {
	if _, err := sendJSON(w, v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.WithError(err).WithField("response", v).
			Error("unable to send response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
