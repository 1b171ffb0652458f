package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"money-manager-server/internal/config"
	"money-manager-server/internal/handlers"
	"money-manager-server/internal/managers"
	"money-manager-server/internal/notifications"
	"money-manager-server/internal/routing"
	"money-manager-server/internal/scheduler"
	"money-manager-server/internal/stores"
)

// Init wires the whole service together and blocks until the process is
// asked to stop.
func Init() {
	cfg := config.Load()
	setLogLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	pool := initializeDatabase(cfg.Database)
	defer pool.Close()

	databaseMgr := managers.NewDatabaseManager(pool)
	mailMgr := managers.NewMailManager(cfg.Mail, cfg.Environment)
	jwtMgr, err := managers.NewJWTManagerFromFile(cfg.JWT.KeyPairPath, cfg.JWT.Lifetime)
	if err != nil {
		log.Fatal("error initializing JWT manager: ", err)
	}

	profileStore := stores.NewProfileStore(databaseMgr.GetPool())
	categoryStore := stores.NewCategoryStore(databaseMgr.GetPool())
	expenseStore := stores.NewExpenseStore(databaseMgr.GetPool())
	incomeStore := stores.NewIncomeStore(databaseMgr.GetPool())

	r := routing.InitRouter(routing.Handlers{
		Profile:     handlers.NewProfileHandler(profileStore, jwtMgr, mailMgr, cfg.ActivationURL, cfg.VerifyEmailMX),
		Category:    handlers.NewCategoryHandler(categoryStore, profileStore),
		Expense:     handlers.NewTransactionHandler(expenseStore, categoryStore, profileStore),
		Income:      handlers.NewTransactionHandler(incomeStore, categoryStore, profileStore),
		Filter:      handlers.NewFilterHandler(expenseStore, incomeStore, profileStore),
		JWTManager:  jwtMgr,
		DatabaseMgr: databaseMgr,
	}, cfg.FrontendURL)
	log.Info("Initialized router")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := initializeScheduler(ctx, cfg, profileStore, expenseStore, mailMgr)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)

		<-c
		log.Info("Server shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("error during shutdown: ", err)
		}
	}()

	log.Info("Starting server on port " + cfg.Port + "...")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Error starting server: ", err)
	}

	sched.Wait()
}

func initializeDatabase(dbConfig config.DatabaseConfig) *pgxpool.Pool {
	log.Info("Initializing database")

	poolConfig, err := pgxpool.ParseConfig(dbConfig.ConnectionString())
	if err != nil {
		log.Fatal("error configuring database: ", err)
	}

	poolConfig.MinConns = 5
	poolConfig.MaxConns = 30
	poolConfig.MaxConnIdleTime = time.Minute * 2
	poolConfig.HealthCheckPeriod = time.Minute * 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatal("error connecting to database: ", err)
	}
	log.Info("Connected to database")
	return pool
}

func initializeScheduler(ctx context.Context, cfg config.Config, profileStore *stores.ProfileStore, expenseStore *stores.TransactionStore, mailMgr managers.MailMgr) *scheduler.Scheduler {
	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("error loading schedule timezone: ", err)
	}

	clock := scheduler.SystemClock()
	notifier := notifications.NewNotifier(profileStore, expenseStore, mailMgr, clock, location, cfg.FrontendURL)

	sched := scheduler.New(clock, location)
	if err := sched.Add("daily-reminder", cfg.Schedule.ReminderTime, notifier.DailyReminder); err != nil {
		log.Fatal("error scheduling daily reminder: ", err)
	}
	if err := sched.Add("daily-expense-digest", cfg.Schedule.DigestTime, notifier.DailyExpenseDigest); err != nil {
		log.Fatal("error scheduling daily expense digest: ", err)
	}

	sched.Start(ctx)
	log.Info("Started notification scheduler")
	return sched
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)
	log.SetOutput(os.Stdout)
}
