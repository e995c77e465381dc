package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/app/delivery/http/routers"
	"carepulse-service/internal/app/drivers/logger"
	"carepulse-service/internal/app/drivers/storage"
	backendrecords "carepulse-service/internal/app/services/backend/records"
	backendusers "carepulse-service/internal/app/services/backend/users"
	"carepulse-service/internal/app/services/core/doctors"
	"carepulse-service/internal/app/services/core/patients"
	"carepulse-service/internal/app/services/core/users"
	sharedstorage "carepulse-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Backend clients
	userBackendClient := backendusers.NewUserBackendClient(bootstrap.InternalConfig.Backend, bootstrap.Logger)
	recordBackendClient := backendrecords.NewRecordBackendClient(bootstrap.InternalConfig.Backend, bootstrap.Logger)

	// Object storage
	objectStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.InternalConfig.Backend, bootstrap.Logger)

	// User
	userUsecase := users.NewUserUsecase(userBackendClient, bootstrap.Logger)
	userController := users.NewUserController(userUsecase, bootstrap.Logger)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(recordBackendClient, bootstrap.InternalConfig.Backend, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	// Patient
	patientUsecase := patients.NewPatientUsecase(recordBackendClient, objectStorage, doctorUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, userController, patientController, doctorController)
}
