package server

import (
	"log"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"positioning-server/confs"
	"positioning-server/db"
	httpHandler "positioning-server/handlers/http"
	"positioning-server/repositories"
	"positioning-server/timeid"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// One identifier generator shared by every telemetry repository; give
	// each server process its own TIMEID_NODE so concurrent writers cannot
	// collide.
	node, err := strconv.ParseInt(confs.GetEnv("TIMEID_NODE", "0"), 10, 64)
	if err != nil {
		log.Fatalf("Invalid TIMEID_NODE: %v", err)
	}
	gen, err := timeid.NewGenerator(node)
	if err != nil {
		log.Fatalf("Failed to create time id generator: %v", err)
	}

	// Initialize repositories
	beaconRepo := repositories.NewBeaconPgRepository(s.db)
	poiRepo := repositories.NewPointOfInterestPgRepository(s.db)
	measurementRepo := repositories.NewMeasurementPgRepository(s.db, gen)
	predictionRepo := repositories.NewPredictionPgRepository(s.db, gen)
	checkpointRepo := repositories.NewCheckpointPgRepository(s.db, gen)

	// Initialize handlers
	beaconHandler := httpHandler.NewBeaconHandler(beaconRepo, measurementRepo)
	poiHandler := httpHandler.NewPointOfInterestHandler(poiRepo)
	positioningHandler := httpHandler.NewPositioningHandler(predictionRepo, checkpointRepo)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Beacon routes, with RSSI measurements as a sub-resource
		beacons := api.Group("/beacons")
		{
			beacons.GET("", beaconHandler.GetAllBeacons)
			beacons.GET("/rssi", beaconHandler.GetAllMeasurements)
			beacons.GET("/:address", beaconHandler.GetBeacon)
			beacons.GET("/:address/rssi", beaconHandler.GetBeaconMeasurements)
			beacons.POST("", beaconHandler.CreateBeacon)
			beacons.POST("/:address/rssi", beaconHandler.CreateMeasurement)
			beacons.PUT("/:address", beaconHandler.UpsertBeacon)
			beacons.DELETE("", beaconHandler.DeleteAllBeacons)
			beacons.DELETE("/rssi", beaconHandler.DeleteAllMeasurements)
			beacons.DELETE("/:address", beaconHandler.DeleteBeacon)
			beacons.DELETE("/:address/rssi", beaconHandler.DeleteBeaconMeasurements)
		}

		// Point of interest routes
		pois := api.Group("/points-of-interest")
		{
			pois.GET("", poiHandler.GetAllPointsOfInterest)
			pois.GET("/:id", poiHandler.GetPointOfInterest)
			pois.POST("", poiHandler.CreatePointOfInterest)
			pois.PUT("/:id", poiHandler.UpsertPointOfInterest)
			pois.DELETE("", poiHandler.DeleteAllPointsOfInterest)
			pois.DELETE("/:id", poiHandler.DeletePointOfInterest)
		}

		// Positioning output routes
		positioning := api.Group("/positioning")
		{
			positioning.GET("", positioningHandler.GetAllPredictions)
			positioning.POST("", positioningHandler.CreatePrediction)
			positioning.DELETE("", positioningHandler.DeleteAllPredictions)
			positioning.GET("/checkpoints", positioningHandler.GetAllCheckpoints)
			positioning.POST("/checkpoints", positioningHandler.CreateCheckpoint)
			positioning.DELETE("/checkpoints", positioningHandler.DeleteAllCheckpoints)
		}
	}

	addr := confs.GetEnv("SERVER_ADDR", "0.0.0.0:3000")
	if err := s.app.Run(addr); err != nil {
		panic(err)
	}
}
