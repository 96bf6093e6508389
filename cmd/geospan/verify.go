package main

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/geospan/network"
)

// runVerify implements "geospan verify": exit 0 accepts, exit 1 rejects.
func runVerify(args []string, stdin io.Reader, stderr io.Writer) int {
	fs, configPath := commonFlags("verify", stderr)
	if err := fs.Parse(args); err != nil {
		return exitBadUsage
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		SetupLogger(DefaultConfig(), stderr).Errorf("Failed to load config: %v", err)
		return exitFailure
	}
	log := SetupLogger(cfg, stderr)

	res, err := network.DecodeResult(bufio.NewReader(stdin))
	if err != nil {
		log.Errorf("Rejected: %v", err)
		return exitFailure
	}
	if err = res.Check(); err != nil {
		log.WithFields(logrus.Fields{
			"points": res.Dist.Rows(),
			"edges":  len(res.Edges),
		}).Errorf("Rejected: %v", err)
		return exitFailure
	}

	log.WithFields(logrus.Fields{
		"points": res.Dist.Rows(),
		"total":  res.Total,
	}).Info("Accepted")

	return exitOK
}
