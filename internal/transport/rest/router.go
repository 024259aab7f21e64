package rest

import "net/http"

//go:generate moq -out mocks_test.go -pkg rest . authService userService activityService communityService postService relationshipService uploadService

// Handlers groups everything NewRouter mounts. Upload is nil when object
// storage is not configured, and its routes are then not registered.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	User       *UserHandler
	Activity   *ActivityHandler
	Community  *CommunityHandler
	Post       *PostHandler
	Upload     *UploadHandler
	Metrics    http.Handler
	AuthLimits func(http.Handler) http.Handler
}

// NewRouter registers all routes on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	authRoute := func(fn http.HandlerFunc) http.Handler {
		if h.AuthLimits == nil {
			return fn
		}
		return h.AuthLimits(fn)
	}
	mux.Handle("POST /auth/signup", authRoute(h.Auth.SignUp))
	mux.Handle("POST /auth/login", authRoute(h.Auth.Login))
	mux.Handle("POST /auth/verify", authRoute(h.Auth.VerifyOTP))
	mux.Handle("POST /auth/otp/resend", authRoute(h.Auth.ResendOTP))

	mux.HandleFunc("GET /users/me", h.User.Me)

	mux.HandleFunc("POST /activities", h.Activity.Save)
	mux.HandleFunc("GET /activities", h.Activity.List)
	mux.HandleFunc("DELETE /activities/{id}", h.Activity.Delete)

	mux.HandleFunc("GET /communities", h.Community.List)
	mux.HandleFunc("POST /communities", h.Community.Create)
	mux.HandleFunc("GET /communities/{id}", h.Community.Get)
	mux.HandleFunc("PUT /communities/{id}", h.Community.Update)
	mux.HandleFunc("DELETE /communities/{id}", h.Community.Delete)
	mux.HandleFunc("GET /communities/{id}/members", h.Community.Members)
	mux.HandleFunc("GET /communities/{id}/membership", h.Community.Membership)
	mux.HandleFunc("POST /communities/{id}/join", h.Community.Join)
	mux.HandleFunc("POST /communities/{id}/leave", h.Community.Leave)
	mux.HandleFunc("POST /communities/{id}/follow", h.Community.ToggleFollow)

	mux.HandleFunc("GET /posts", h.Post.List)
	mux.HandleFunc("POST /posts", h.Post.Create)
	mux.HandleFunc("GET /posts/{id}", h.Post.Get)
	mux.HandleFunc("DELETE /posts/{id}", h.Post.Delete)
	mux.HandleFunc("POST /posts/{id}/like", h.Post.ToggleLike)
	mux.HandleFunc("PUT /posts/{id}/like", h.Post.Like)
	mux.HandleFunc("DELETE /posts/{id}/like", h.Post.Unlike)

	if h.Upload != nil {
		mux.HandleFunc("POST /uploads", h.Upload.Upload)
		mux.HandleFunc("POST /uploads/presign", h.Upload.Presign)
	}

	return mux
}
