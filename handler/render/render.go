package render

import (
	"encoding/json"
	"net/http"

	"lendpool/core"

	"github.com/sirupsen/logrus"
)

// H map shortcut
type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorln("render json:", err)
	}
}

// Error write error
func Error(w http.ResponseWriter, statusCode int, errCode core.ErrorCode, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(H{"code": errCode, "msg": err.Error()}); err != nil {
		logrus.Errorln("render error:", err)
	}
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, core.ErrOperationForbidden, err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, core.ErrReserveNotFound, err)
}

// InternalError internal server error
func InternalError(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, core.ErrUnknown, err)
}
