// Command sweepisect computes all pairwise intersection points among
// the line segments listed in an input file and writes them to
// <input>.i in the same directory.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("sweepisect failed")
		os.Exit(1)
	}
}
