package main

import (
	"log"
	"net/http"

	"github.com/eventara/backend/internal/middleware"
	"github.com/eventara/backend/pkg/prometheus"
	"github.com/eventara/backend/pkg/router"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadPublisher()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	httpSrv := &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.router.Handler()),
	}

	log.Printf("Starting server on address: %s\n", s.configs.ApiServer.Address())
	if err := httpSrv.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())
	s.router.AddHandler("/metrics", prometheus.NewHandler())

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	authRouter.Before(authVerifier.Middleware())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)

		// Event API
		router.POST(authRouter, "/createEvent", s.eventDomain.Create)
		router.POST(authRouter, "/updateEvent", s.eventDomain.UpdateByID)
		router.POST(authRouter, "/reviewEvent", s.eventDomain.Review)

		// Category API
		router.POST(authRouter, "/createCategory", s.categoryDomain.Create)
		router.POST(authRouter, "/updateCategory", s.categoryDomain.UpdateByID)
		router.POST(authRouter, "/deleteCategory", s.categoryDomain.DeleteByID)
		router.POST(authRouter, "/setWinner", s.categoryDomain.SetWinner)

		// Nominee API
		router.POST(authRouter, "/createNominee", s.nomineeDomain.Create)
		router.POST(authRouter, "/updateNominee", s.nomineeDomain.UpdateByID)
		router.POST(authRouter, "/deleteNominee", s.nomineeDomain.DeleteByID)

		// Ballot API
		router.POST(authRouter, "/vote", s.ballotDomain.Vote)
		router.GET(authRouter, "/getMyBallots", s.ballotDomain.GetMyBallots)
		router.GET(authRouter, "/getBallots", s.ballotDomain.GetList)

		// Collaborator API
		router.POST(authRouter, "/createCollaborator", s.collaboratorDomain.Assign)
		router.POST(authRouter, "/deleteCollaborator", s.collaboratorDomain.Delete)
		router.GET(authRouter, "/getCollaborators", s.collaboratorDomain.GetList)
	}

	// These following APIs are public, but give more information when the
	// requester is authenticated.
	optionalAuthRouter := s.router.Branch()
	optionalAuthVerifier := middleware.NewAuthVerifier().WithAccessToken().WithOptional()
	optionalAuthRouter.Before(optionalAuthVerifier.Middleware())
	{
		router.GET(optionalAuthRouter, "/getEvent", s.eventDomain.Get)
		router.GET(optionalAuthRouter, "/getEvents", s.eventDomain.GetList)
		router.GET(optionalAuthRouter, "/getCategories", s.categoryDomain.GetList)
		router.GET(optionalAuthRouter, "/getNominees", s.nomineeDomain.GetList)
		router.GET(optionalAuthRouter, "/getTally", s.ballotDomain.GetTally)
		router.GET(optionalAuthRouter, "/getLeaderboard", s.ballotDomain.GetLeaderboard)
	}
}
