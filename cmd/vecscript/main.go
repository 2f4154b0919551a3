package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/quickwritereader/simplevector/assertx"
	"github.com/quickwritereader/simplevector/logutil"
	"github.com/quickwritereader/simplevector/script"
)

var (
	scriptFile = flag.String("script", "./ops.toml", "toml script of vector operations")
	codecName  = flag.String("codec", "", "output codec, overrides the script (json, jsoniter, msgpack, binary)")
	checks     = flag.Bool("assert", false, "enable contract assertions")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	s, err := script.Load(*scriptFile)
	if err != nil {
		return err
	}
	if err := logutil.SetupLogger(&s.Log); err != nil {
		return err
	}
	defer func() { _ = logutil.GetGlobalLogger().Sync() }()

	assertx.SetEnabled(*checks)
	if *codecName != "" {
		s.Codec = *codecName
	}

	logutil.Info("running script",
		zap.String("file", *scriptFile),
		zap.Int("ops", len(s.Ops)),
		zap.String("codec", s.Codec))

	v, err := s.Run()
	if err != nil {
		logutil.Error("script failed", zap.Error(err), zap.Int("size", v.Size()))
		return err
	}
	out, err := script.Encode(s.Codec, v)
	if err != nil {
		return err
	}
	fmt.Println(out)
	logutil.Info("script done", zap.Int("size", v.Size()), zap.Int("capacity", v.Capacity()))
	return nil
}
