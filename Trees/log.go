package Trees

import "github.com/sirupsen/logrus"

// Log receives the debug trace of structural decisions, such as which
// successor Remove promoted. It only logs warnings and above unless its
// level is lowered.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}
