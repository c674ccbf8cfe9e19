// Command bstdemo walks through the Trees.BSTree API on a small set of keys
// and logs what every call returns.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/sirupsen/logrus"
)

var (
	keysFlag    = flag.String("keys", "5,8,10,54,90,4,1,3,12,9,17,45,80,34,27", "comma separated initial keys")
	verboseFlag = flag.Bool("v", false, "log successor decisions made by Remove")
	jsonFlag    = flag.Bool("json", false, "log as JSON")
)

var log = logrus.New()

func parseKeys(s string) ([]int, error) {
	var keys []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing key %q", f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func run(keys []int) error {
	tree := Trees.New(keys...)
	log.WithFields(logrus.Fields{"keys": keys, "size": tree.Size(), "height": tree.Height()}).Info("built from unordered keys")

	for _, k := range []int{52, 53, 5} {
		log.WithFields(logrus.Fields{"op": "insert", "key": k, "ok": tree.Insert(k)}).Info()
	}
	for _, k := range []int{8, 1000} {
		log.WithFields(logrus.Fields{"op": "remove", "key": k, "ok": tree.Remove(k)}).Info()
	}
	for _, k := range []int{2, 80} {
		log.WithFields(logrus.Fields{"op": "has", "key": k, "ok": tree.Has(k)}).Info()
	}
	lo, err := tree.First()
	if err != nil {
		return err
	}
	hi, err := tree.Last()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"tree": tree.String(), "size": tree.Size(), "min": lo, "max": hi, "height": tree.Height(),
	}).Info("contents")

	log.WithFields(logrus.Fields{"op": "remove", "key": 45, "ok": tree.Remove(45), "height": tree.Height()}).Info("removal promotes from the deeper side")
	return tree.Validate()
}

func main() {
	flag.Parse()
	if *jsonFlag {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	if *verboseFlag {
		Trees.Log.SetLevel(logrus.DebugLevel)
		Trees.Log.SetFormatter(log.Formatter)
	}
	keys, err := parseKeys(*keysFlag)
	if err != nil {
		log.WithError(err).Error("bad -keys")
		os.Exit(2)
	}
	start := time.Now()
	if err := run(keys); err != nil {
		log.WithError(err).Error("demo failed")
		os.Exit(1)
	}
	log.WithField("elapsed", time.Since(start)).Info("done")
}
