package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raizapp/raizapp-backend/api/controllers"
	"github.com/raizapp/raizapp-backend/api/middleware"
	"github.com/raizapp/raizapp-backend/internal/activities"
	"github.com/raizapp/raizapp-backend/internal/auth"
	"github.com/raizapp/raizapp-backend/internal/conversations"
	"github.com/raizapp/raizapp-backend/internal/habits"
	"github.com/raizapp/raizapp-backend/internal/insights"
	"github.com/raizapp/raizapp-backend/internal/profiles"
	"github.com/raizapp/raizapp-backend/internal/quiz"
	"github.com/raizapp/raizapp-backend/internal/statistics"
	"github.com/raizapp/raizapp-backend/pkg/auth/session"
	"github.com/raizapp/raizapp-backend/pkg/config"
	"github.com/raizapp/raizapp-backend/pkg/logger"
	"github.com/raizapp/raizapp-backend/pkg/metrics"
	"github.com/raizapp/raizapp-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        controllers.Pinger
	RedisClient     *redis.Client
	SessionChecker  session.AccessSessionChecker
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer

	AuthService          auth.Service
	ProfilesService      profiles.Service
	QuizService          quiz.Service
	ActivitiesService    activities.Service
	InsightsService      insights.Service
	HabitsService        habits.Service
	ConversationsService conversations.Service
	StatisticsService    statistics.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.RedisClient))
	})

	if p.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Get("/stats", controllers.PromoStats(p.StatisticsService, logg))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, p.RedisClient, logg)).Post("/signup", controllers.AuthSignUp(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.RedisClient, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Get("/me", controllers.AuthMe())

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileFetch(p.ProfilesService, logg))
			r.Put("/", controllers.ProfileUpdate(p.ProfilesService, logg))
			r.Post("/trial", controllers.ProfileStartTrial(p.ProfilesService, logg))
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/questions", controllers.QuizQuestions(p.QuizService))
			r.Post("/responses", controllers.QuizSubmit(p.QuizService, logg))
			r.Get("/responses", controllers.QuizResponses(p.QuizService, logg))
			r.Get("/status", controllers.QuizStatus(p.QuizService, logg))
		})

		r.Route("/activities", func(r chi.Router) {
			r.Post("/", controllers.ActivityCreate(p.ActivitiesService, logg))
			r.Get("/", controllers.ActivityList(p.ActivitiesService, logg))
		})

		r.Get("/insights", controllers.InsightsFetch(p.InsightsService, logg))
		r.Get("/habits", controllers.HabitsFetch(p.HabitsService, logg))

		r.Route("/conversations", func(r chi.Router) {
			r.Post("/", controllers.ConversationSend(p.ConversationsService, logg))
			r.Get("/", controllers.ConversationHistory(p.ConversationsService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(p.ProfilesService, logg))
			r.Get("/stats", controllers.AdminStats(p.StatisticsService, logg))
			r.Get("/users", controllers.AdminUsers(p.ProfilesService, logg))
		})
	})

	return r
}
