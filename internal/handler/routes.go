package handler

import "net/http"

// API は /api 配下のハンドラ一式
type API struct {
	Base      *Handler
	Auth      *AuthHandler
	Slides    *HeroSlideHandler
	Services  *ServiceHandler
	Team      *TeamMemberHandler
	Messages  *MessageHandler
	Contact   *ContactHandler
	Upload    *UploadHandler
	Stats     *StatsHandler
	RateLimit *RateLimiter
}

// Register mounts the JSON API on mux. requireSession guards admin writes and
// personal-data reads; catalog reads under /api/admin stay open.
func (a *API) Register(mux *http.ServeMux, requireSession func(http.Handler) http.Handler) {
	gated := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, requireSession(h))
	}
	limited := func(h http.HandlerFunc) http.Handler {
		if a.RateLimit == nil {
			return h
		}
		return a.RateLimit.Middleware(h)
	}

	mux.HandleFunc("GET /api/health", a.Base.Health)

	// 認証
	mux.Handle("POST /api/auth/login", limited(a.Auth.Login))
	mux.HandleFunc("POST /api/auth/logout", a.Auth.Logout)
	gated("GET /api/auth/me", a.Auth.Me)

	// 公開 API
	mux.HandleFunc("GET /api/services", a.Services.PublicList)
	mux.HandleFunc("GET /api/services/{slug}", a.Services.PublicGet)
	mux.HandleFunc("GET /api/team", a.Team.PublicList)
	mux.HandleFunc("GET /api/hero-slides", a.Slides.PublicList)
	mux.Handle("POST /api/contact", limited(a.Contact.Submit))
	mux.Handle("POST /api/upload", limited(a.Upload.Upload))

	// ヒーロースライド
	mux.HandleFunc("GET /api/admin/hero-slides", a.Slides.List)
	gated("POST /api/admin/hero-slides", a.Slides.Create)
	gated("PUT /api/admin/hero-slides/reorder", a.Slides.Reorder)
	mux.HandleFunc("GET /api/admin/hero-slides/{id}", a.Slides.Get)
	gated("PATCH /api/admin/hero-slides/{id}", a.Slides.Update)
	gated("DELETE /api/admin/hero-slides/{id}", a.Slides.Delete)

	// サービス
	mux.HandleFunc("GET /api/admin/services", a.Services.List)
	gated("POST /api/admin/services", a.Services.Create)
	gated("PUT /api/admin/services/reorder", a.Services.Reorder)
	mux.HandleFunc("GET /api/admin/services/{id}", a.Services.Get)
	gated("PATCH /api/admin/services/{id}", a.Services.Update)
	gated("DELETE /api/admin/services/{id}", a.Services.Delete)

	mux.HandleFunc("GET /api/admin/services/{id}/items", a.Services.ListItems)
	gated("POST /api/admin/services/{id}/items", a.Services.CreateItem)
	gated("PUT /api/admin/services/{id}/items/reorder", a.Services.ReorderItems)
	mux.HandleFunc("GET /api/admin/services/{id}/items/{itemId}", a.Services.GetItem)
	gated("PATCH /api/admin/services/{id}/items/{itemId}", a.Services.UpdateItem)
	gated("DELETE /api/admin/services/{id}/items/{itemId}", a.Services.DeleteItem)

	mux.HandleFunc("GET /api/admin/services/{id}/benefits", a.Services.ListBenefits)
	gated("POST /api/admin/services/{id}/benefits", a.Services.CreateBenefit)
	gated("PUT /api/admin/services/{id}/benefits/reorder", a.Services.ReorderBenefits)
	mux.HandleFunc("GET /api/admin/services/{id}/benefits/{benefitId}", a.Services.GetBenefit)
	gated("PATCH /api/admin/services/{id}/benefits/{benefitId}", a.Services.UpdateBenefit)
	gated("DELETE /api/admin/services/{id}/benefits/{benefitId}", a.Services.DeleteBenefit)

	// チームメンバー
	mux.HandleFunc("GET /api/admin/team-members", a.Team.List)
	gated("POST /api/admin/team-members", a.Team.Create)
	gated("PUT /api/admin/team-members/reorder", a.Team.Reorder)
	mux.HandleFunc("GET /api/admin/team-members/{id}", a.Team.Get)
	gated("PATCH /api/admin/team-members/{id}", a.Team.Update)
	gated("DELETE /api/admin/team-members/{id}", a.Team.Delete)

	// お問い合わせ（個人情報のため閲覧もログイン必須）
	gated("GET /api/admin/messages", a.Messages.List)
	gated("GET /api/admin/messages/{id}", a.Messages.Get)
	gated("PATCH /api/admin/messages/{id}", a.Messages.Update)
	gated("DELETE /api/admin/messages/{id}", a.Messages.Delete)

	gated("GET /api/admin/stats", a.Stats.Stats)
	gated("DELETE /api/admin/uploads/{fileName}", a.Upload.Delete)
}
