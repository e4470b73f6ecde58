package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"flightops360/hangar/internal/api"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/config"
	"flightops360/hangar/internal/db"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
)

// fixtures is the seed file layout. Records are written as they would be
// posted to the API, using the API's field names.
type fixtures struct {
	Company   map[string]any   `yaml:"company"`
	Aircraft  []aircraftSeed   `yaml:"aircraft"`
	Crew      []map[string]any `yaml:"crew"`
	Customers []map[string]any `yaml:"customers"`
	Bulletins []map[string]any `yaml:"bulletins"`
	Users     []map[string]any `yaml:"users"`
}

type aircraftSeed struct {
	Record map[string]any `yaml:",inline"`
	Rate   map[string]any `yaml:"rate"`
}

type summary struct {
	Aircraft, Rates, Crew, Customers, Bulletins, Users int
}

func main() {
	var (
		file   = flag.StringP("file", "f", "fixtures.yaml", "YAML fixture file")
		driver = flag.String("store", "", "store driver override (firestore, postgres, sqlite, mongo)")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *driver != "" {
		cfg.StoreDriver = *driver
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Close()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read fixtures: %v", err)
	}
	fx, err := parseFixtures(raw)
	if err != nil {
		log.Fatalf("parse fixtures: %v", err)
	}

	ctx := context.Background()
	st, err := db.OpenStore(ctx, cfg, nil)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	deps := api.InitDependencies(st, api.Collaborators{Cache: common.NewCacheService(60, 120), CacheTTL: cfg.CacheTTL}, nil)
	sum, err := load(ctx, deps.Services, fx)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	logging.Info("seed complete",
		"aircraft", sum.Aircraft, "rates", sum.Rates, "crew", sum.Crew,
		"customers", sum.Customers, "bulletins", sum.Bulletins, "users", sum.Users)
}

func parseFixtures(raw []byte) (*fixtures, error) {
	var fx fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, err
	}
	return &fx, nil
}

// decodeAs converts a YAML mapping into T through its JSON field names.
func decodeAs[T any](m map[string]any) (*T, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func seedAll[T any](ctx context.Context, kind string, records []map[string]any, save func(context.Context, *T) (*T, error)) (int, error) {
	for i, m := range records {
		v, err := decodeAs[T](m)
		if err != nil {
			return i, fmt.Errorf("%s #%d: %w", kind, i+1, err)
		}
		if _, err := save(ctx, v); err != nil {
			return i, fmt.Errorf("%s #%d: %w", kind, i+1, err)
		}
	}
	return len(records), nil
}

// load writes every fixture through the services, so ids, codes and derived
// fields are produced exactly as the API would produce them.
func load(ctx context.Context, svc *api.Services, fx *fixtures) (*summary, error) {
	sum := &summary{}

	if err := svc.Admin.EnsureSystemRoles(ctx); err != nil {
		return nil, err
	}

	if fx.Company != nil {
		p, err := decodeAs[entities.CompanyProfile](fx.Company)
		if err != nil {
			return nil, fmt.Errorf("company: %w", err)
		}
		if _, err := svc.Company.SaveProfile(ctx, p); err != nil {
			return nil, fmt.Errorf("company: %w", err)
		}
	}

	for i, a := range fx.Aircraft {
		ac, err := decodeAs[entities.FleetAircraft](a.Record)
		if err != nil {
			return nil, fmt.Errorf("aircraft #%d: %w", i+1, err)
		}
		if err := entities.Validate(ac); err != nil {
			return nil, fmt.Errorf("aircraft #%d: %w", i+1, err)
		}
		saved, err := svc.Fleet.SaveAircraft(ctx, ac)
		if err != nil {
			return nil, fmt.Errorf("aircraft %s: %w", ac.TailNumber, err)
		}
		sum.Aircraft++
		if a.Rate == nil {
			continue
		}
		rate, err := decodeAs[entities.AircraftRate](a.Rate)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", ac.TailNumber, err)
		}
		if _, err := svc.Fleet.SaveRate(ctx, saved.ID, rate); err != nil {
			return nil, fmt.Errorf("rate %s: %w", ac.TailNumber, err)
		}
		sum.Rates++
	}

	var err error
	if sum.Crew, err = seedAll(ctx, "crew", fx.Crew, validated(svc.Crew.SaveCrewMember)); err != nil {
		return nil, err
	}
	if sum.Customers, err = seedAll(ctx, "customer", fx.Customers, validated(svc.Customers.SaveCustomer)); err != nil {
		return nil, err
	}
	if sum.Bulletins, err = seedAll(ctx, "bulletin", fx.Bulletins, validated(svc.Bulletins.SaveBulletin)); err != nil {
		return nil, err
	}
	if sum.Users, err = seedAll(ctx, "user", fx.Users, validated(svc.Admin.SaveUser)); err != nil {
		return nil, err
	}
	return sum, nil
}

// validated runs the same input checks the HTTP handlers run before save.
func validated[T any](save func(context.Context, *T) (*T, error)) func(context.Context, *T) (*T, error) {
	return func(ctx context.Context, v *T) (*T, error) {
		if err := entities.Validate(v); err != nil {
			return nil, err
		}
		return save(ctx, v)
	}
}
