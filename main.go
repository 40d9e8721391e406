package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/config"
	apiv1 "github.com/hdgomez8/portal-uci-back-sub001/controllers/v1"
	"github.com/hdgomez8/portal-uci-back-sub001/controllers/v1/dict"
	"github.com/hdgomez8/portal-uci-back-sub001/fiberlog"
	"github.com/hdgomez8/portal-uci-back-sub001/initializers"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitEmployeeApiRouters(apiV1)
	apiv1.InitRolesApiRouters(apiV1)

	//solicitudes
	requests := fiber.New()
	apiV1.Mount("/requests", requests)
	requests.Use(middleware.WithBodyLimit(1 * 1024 * 1024))
	requests.Use(middleware.AuthorizationRequired())
	requests.Use(middleware.RbacMiddleware())
	apiv1.InitVacationRequestApiRouters(requests)
	apiv1.InitShiftChangeApiRouters(requests)
	apiv1.InitSeveranceApiRouters(requests)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired())
	dicts.Use(middleware.RbacMiddleware())
	dict.InitDepartmentDictApiRouters(dicts)
	dict.InitAreaDictApiRouters(dicts)

	//reportes
	reports := fiber.New()
	apiV1.Mount("/reports", reports)
	reports.Use(middleware.AuthorizationRequired())
	reports.Use(middleware.RbacMiddleware())
	apiv1.InitReportApiRouters(reports)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
