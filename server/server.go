package server

import (
	"context"
	"log"
	"os"

	"vitalfit/config/db"
	"vitalfit/config/redis"

	"github.com/gin-gonic/gin"
)

type Options struct {
	CacheEnabled     bool
	MongoEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	JobsEnabled bool
	JobsHandler func()

	MigrationEnabled bool
	MigrationHandler func()

	WebServerPreHandler func(r *gin.Engine)
}

func GetDefaultOptions() Options {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return Options{
		CacheEnabled:     true,
		MongoEnabled:     true,
		WebServerEnabled: true,
		WebServerPort:    port,
	}
}

/*
* Bring up mongo, cache, migrations and jobs, then serve
 */
func Start(options Options) {
	if options.MongoEnabled {
		if err := db.Connect(); err != nil {
			log.Fatal("Unable to connect to mongo: ", err)
		}
		db.EnsureIndexes(context.Background())
	}
	if options.CacheEnabled {
		redis.Init()
	}
	if options.MigrationEnabled && options.MigrationHandler != nil {
		options.MigrationHandler()
	}
	if options.JobsEnabled && options.JobsHandler != nil {
		options.JobsHandler()
	}
	if !options.WebServerEnabled {
		return
	}

	r := gin.Default()
	if options.WebServerPreHandler != nil {
		options.WebServerPreHandler(r)
	}
	if err := r.Run(":" + options.WebServerPort); err != nil {
		log.Fatal("Web server stopped: ", err)
	}
}
