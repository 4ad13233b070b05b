package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"markethealth-api/internal/svc"
	"markethealth-api/web"
)

// IndexHandler serves the embedded dashboard page.
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := web.Index()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}
