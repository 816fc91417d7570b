package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/auth"
	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/middleware"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = apperror.New(apperror.InvalidArgument, "Invalid request format")

// decodeJSON reads the request body into v. Numbers in untyped fields decode
// as json.Number so amounts keep their exact text. An empty body is accepted
// when optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	return nil
}

func principalOf(r *http.Request) (auth.Principal, error) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return p, nil
}

// targetEmployee resolves whose records a request reads. Managers may name
// any employee or none; everyone else is pinned to their own profile.
func targetEmployee(p auth.Principal, requested *int64) (*int64, error) {
	if p.IsManager() {
		return requested, nil
	}
	own, err := p.RequireEmployee()
	if err != nil {
		return nil, err
	}
	if requested != nil && *requested != own {
		return nil, auth.ErrForbidden
	}
	return &own, nil
}

func queryString(q url.Values, key string) *string {
	if v := q.Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(q url.Values, key string, errs *validator.ValidationErrors) int {
	raw := q.Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(key, key+" must be a number")
		return 0
	}
	return n
}

func queryID(q url.Values, key string, errs *validator.ValidationErrors) *int64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	id, ok := validator.ParseID(raw)
	if !ok {
		errs.Add(key, key+" must be a positive number")
		return nil
	}
	return &id
}
