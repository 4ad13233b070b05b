package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"markethealth-api/internal/logic"
	"markethealth-api/internal/svc"
)

func MetaHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewMetaLogic(r.Context(), svcCtx)
		resp, err := l.Meta()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
