package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"

	"studyhard_backend/internals/configs"
	"studyhard_backend/internals/databases/boltkv"
	assignRepo "studyhard_backend/internals/features/assignments/repository"
	subRepo "studyhard_backend/internals/features/submissions/repository"
	authRepo "studyhard_backend/internals/features/users/auth/repository"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

// Stores: satu handle storage untuk seluruh proses, apa pun drivernya.
type Stores struct {
	Driver      string
	Assignments assignRepo.AssignmentRepository
	Submissions subRepo.SubmissionRepository
	Blacklist   authRepo.BlacklistRepository

	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// Open memilih driver dari STORE_DRIVER dan menyiapkan skema/index.
func Open(ctx context.Context, cfg *configs.Config) (*Stores, error) {
	log.Info().Str("driver", cfg.StoreDriver).Msg("opening store")

	switch cfg.StoreDriver {
	case DriverMongo, "":
		return openMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case DriverPostgres:
		return openPostgres(ctx, PostgresDSN(cfg.Postgres))
	case DriverBolt:
		return OpenBolt(cfg.BoltPath)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func openMongo(ctx context.Context, uri, dbName string) (*Stores, error) {
	client, err := ConnectMongo(ctx, uri)
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	assignments := assignRepo.NewMongoAssignments(db)
	submissions := subRepo.NewMongoSubmissions(db)
	blacklist := authRepo.NewMongoBlacklist(db)

	for _, ensure := range []func(context.Context) error{
		assignments.EnsureIndexes, submissions.EnsureIndexes, blacklist.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Warn().Err(err).Msg("ensure mongo index")
		}
	}

	return &Stores{
		Driver:      DriverMongo,
		Assignments: assignments,
		Submissions: submissions,
		Blacklist:   blacklist,
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		Close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, dsn string) (*Stores, error) {
	db, err := ConnectPostgres(dsn)
	if err != nil {
		return nil, err
	}
	TunePool(db)

	assignments := assignRepo.NewGormAssignments(db)
	submissions := subRepo.NewGormSubmissions(db)
	blacklist := authRepo.NewGormBlacklist(db)

	for _, migrate := range []func(context.Context) error{
		assignments.Migrate, submissions.Migrate, blacklist.Migrate,
	} {
		if err := migrate(ctx); err != nil {
			_ = closePostgres(db)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &Stores{
		Driver:      DriverPostgres,
		Assignments: assignments,
		Submissions: submissions,
		Blacklist:   blacklist,
		Ping: func(ctx context.Context) error {
			return pingPostgres(ctx, db)
		},
		Close: func(context.Context) error {
			return closePostgres(db)
		},
	}, nil
}

// OpenBolt: store embedded satu file, dipakai juga oleh test handler.
func OpenBolt(path string) (*Stores, error) {
	db, err := boltkv.Open(path)
	if err != nil {
		return nil, err
	}
	return NewBoltStores(db), nil
}

func NewBoltStores(db *bbolt.DB) *Stores {
	return &Stores{
		Driver:      DriverBolt,
		Assignments: assignRepo.NewBoltAssignments(db),
		Submissions: subRepo.NewBoltSubmissions(db),
		Blacklist:   authRepo.NewBoltBlacklist(db),
		Ping: func(context.Context) error {
			return db.View(func(*bbolt.Tx) error { return nil })
		},
		Close: func(context.Context) error {
			return db.Close()
		},
	}
}
