package main

import (
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/yeremiapane/spot-seeder/config"
	"github.com/yeremiapane/spot-seeder/seeder"
	"github.com/yeremiapane/spot-seeder/sqlout"
	"github.com/yeremiapane/spot-seeder/utils"
)

func main() {
	out := flag.String("o", "", "output file for the SQL artifact (default stdout)")
	flag.Parse()

	utils.InitLogger()
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("invalid configuration: %v", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			utils.ErrorLogger.Fatalf("cannot create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	sink := sqlout.NewSQLSink(w)
	ctx := seeder.NewContext(cfg, sink)

	if err := seeder.WriteHeader(sink, cfg); err != nil {
		utils.ErrorLogger.Fatalf("header write failed: %v", err)
	}

	pipeline, err := seeder.NewPipeline(seeder.DefaultStages()...)
	if err != nil {
		utils.ErrorLogger.Fatalf("pipeline construction failed: %v", err)
	}
	if err := pipeline.Run(ctx); err != nil {
		utils.ErrorLogger.Fatalf("generation aborted: %v", err)
	}

	if err := seeder.WriteFooter(sink, ctx); err != nil {
		utils.ErrorLogger.Fatalf("footer write failed: %v", err)
	}
	if err := sink.Flush(); err != nil {
		utils.ErrorLogger.Fatalf("flush failed: %v", err)
	}

	utils.InfoLogger.Printf("Generated %d users (%d owners), %d stores, %d menus, %d options, %d orders, %d reviews",
		len(ctx.Users), len(ctx.Owners), len(ctx.Stores), ctx.MenuCount(), ctx.OptionCount(), len(ctx.Orders), ctx.ReviewCount)
}
