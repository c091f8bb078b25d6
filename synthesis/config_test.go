package synthesis_test

import (
	"os"
	"testing"

	"github.com/lorepozo/skn/synthesis"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig_ResolvesBinaryFromEnv(t *testing.T) {
	t.Setenv("EC", "/usr/local/bin/ec")
	cfg := synthesis.NewConfig()
	assert.Equal(t, "/usr/local/bin/ec", cfg.Binary)
}

func TestNewConfig_FallsBackToBarePath(t *testing.T) {
	os.Unsetenv("EC")
	cfg := synthesis.NewConfig()
	assert.Equal(t, "ec", cfg.Binary)
}

func TestConfig_CoursePathZeroPads(t *testing.T) {
	cfg := synthesis.NewConfig()
	cfg.CurriculumDir = "/tmp/curriculum"
	assert.Equal(t, "/tmp/curriculum/course_01.json", cfg.CoursePath(1))
	assert.Equal(t, "/tmp/curriculum/course_12.json", cfg.CoursePath(12))
}
