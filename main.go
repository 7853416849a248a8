package main

import (
	"flag"
	"log/slog"

	"github.com/kitfest-dev/event-pass-api/api"
	"github.com/kitfest-dev/event-pass-api/common/config"
	"github.com/kitfest-dev/event-pass-api/common/gorm"
	"github.com/kitfest-dev/event-pass-api/common/mongo"
	"github.com/kitfest-dev/event-pass-api/common/util"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()
	config.LoadConfig()
	if *isPushDB {
		gorm.Push_db()
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()

	if err := util.InitMinIO(); err != nil {
		// Storage is optional: passes fall back to inline data URIs.
		slog.Warn("MinIO unavailable, pass publishing falls back to inline data URIs", "error", err)
	}

	util.InitDialer()
	api.InitFiber()
}
