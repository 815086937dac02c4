package http

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Тексты ответов API
const (
	msgInvalidJSON      = "JSON invalide"
	msgInternalError    = "Erreur interne du serveur"
	msgRouteNotFound    = "Route non trouvée"
	msgMethodNotAllowed = "Méthode non autorisée"
)

var (
	errMalformedJSON    = errors.New("malformed JSON body")
	errInvalidFieldType = errors.New("invalid JSON field type")
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternalError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondError отправляет ответ вида {"error": message}
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{
		"error": message,
	})
}

// respondMessage отправляет ответ вида {"message": message}
func respondMessage(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{
		"message": message,
	})
}

// responder отвечает на непредвиденные ошибки: подробности пишутся в лог,
// клиенту - только в режиме отладки
type responder struct {
	logger logger.Logger
	debug  bool
}

func (rs responder) internalError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	rs.logger.Error(logMsg, map[string]interface{}{
		"error":      err.Error(),
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": chiMiddleware.GetReqID(r.Context()),
	})

	body := map[string]string{"error": msgInternalError}
	if rs.debug {
		body["detail"] = err.Error()
	}
	respondJSON(w, http.StatusInternalServerError, body)
}

// decodeJSON строго декодирует тело запроса в dst.
// Синтаксические ошибки и лишние данные после объекта дают errMalformedJSON,
// значения неверного типа - errInvalidFieldType.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errInvalidFieldType
		}
		return errMalformedJSON
	}

	if _, err := dec.Token(); err != io.EOF {
		return errMalformedJSON
	}

	return nil
}

// pathID извлекает числовой параметр пути; false, если это не целое число
func pathID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// coerceInt приводит строку к целому по ее числовому префиксу:
// "12" -> 12, "12abc" -> 12, " -3" -> -3, "abc" -> 0,
// "1e3" -> 1000, "1.9" -> 1, "2.5e1x" -> 25.
// Переполнение насыщается до границ int64.
func coerceInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	prefix := s[:numericPrefixLen(s)]

	if strings.ContainsAny(prefix, ".eE") {
		f, _ := strconv.ParseFloat(prefix, 64)
		switch {
		case math.IsNaN(f):
			return 0
		case f >= math.MaxInt64:
			return math.MaxInt64
		case f <= math.MinInt64:
			return math.MinInt64
		}
		return int64(f)
	}

	negative := false
	if prefix != "" && (prefix[0] == '+' || prefix[0] == '-') {
		negative = prefix[0] == '-'
		prefix = prefix[1:]
	}

	var n int64
	for i := 0; i < len(prefix); i++ {
		digit := int64(prefix[i] - '0')
		if n > (math.MaxInt64-digit)/10 {
			if negative {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + digit
	}

	if negative {
		return -n
	}
	return n
}

// numericPrefixLen возвращает длину ведущего числа вида
// [+-]digits[.digits][e[+-]digits]; 0, если число не найдено
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for ; j < len(s) && isDigit(s[j]); j++ {
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
