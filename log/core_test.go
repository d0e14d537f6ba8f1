package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
	buf *bytes.Buffer
}

func (s *LogTestSuite) SetupTest() {
	s.buf = new(bytes.Buffer)
	logger = newLogger()
	logger.SetOutput(s.buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
}

func (s *LogTestSuite) TearDownTest() {
	logger = newLogger()
}

func (s *LogTestSuite) TestDefaultLevelIsWarn() {
	Debugf("debug %v", 1)
	Printf("info %v", 2)
	s.Empty(s.buf.String())
	Warnf("warn %v", 3)
	s.Contains(s.buf.String(), "warn 3")
	s.False(IsDebug())
}

func (s *LogTestSuite) TestInit() {
	Init(true, false)
	s.True(IsDebug())
	Debugf("debug %v", 1)
	s.Contains(s.buf.String(), "debug 1")

	Init(false, false)
	s.False(IsDebug())
	Printf("info %v", 2)
	s.Contains(s.buf.String(), "info 2")

	s.buf.Reset()
	Init(true, true)
	Printf("info %v", 3)
	s.Empty(s.buf.String())
}

func (s *LogTestSuite) TestWithFields() {
	SetLevel(logrus.DebugLevel)
	WithFields(logrus.Fields{"category": "all({})"}).Debug("hello")
	s.Contains(s.buf.String(), "msg=hello")
	s.Contains(s.buf.String(), "category=")
}

func (s *LogTestSuite) TestSetFormatter() {
	SetFormatter(&logrus.JSONFormatter{})
	Warnf("json")
	s.Contains(s.buf.String(), `"msg":"json"`)
	s.Equal(logger, Logger())
}

func TestLog(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
