package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"markethealth-api/internal/logic"
	"markethealth-api/internal/svc"
	"markethealth-api/internal/types"
)

func TableHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TableReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewTableLogic(r.Context(), svcCtx)
		resp, err := l.Table(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
