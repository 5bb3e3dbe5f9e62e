package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("DETECT_")
	assert.Equal(t, "CORE_DETECT_MARGIN", c.Key("MARGIN"))
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("WL_")
	t.Setenv("WL_NAME", "  wordlang ")
	t.Setenv("WL_WORKERS", " 8 ")
	t.Setenv("WL_SWAGGER", "false")
	t.Setenv("WL_TIMEOUT", "250ms")

	assert.Equal(t, "wordlang", c.MayString("NAME", "x"))
	assert.Equal(t, "x", c.MayString("MISSING", "x"))
	assert.Equal(t, 8, c.MayInt("WORKERS", 4))
	assert.False(t, c.MayBool("SWAGGER", true))
	assert.Equal(t, 250*time.Millisecond, c.MayDuration("TIMEOUT", time.Second))
	assert.Equal(t, time.Second, c.MayDuration("MISSING", time.Second))
}

func TestMay_BadValueFallsBack(t *testing.T) {
	c := New().Prefix("WL_")
	t.Setenv("WL_WORKERS", "many")
	t.Setenv("WL_SWAGGER", "maybe")
	t.Setenv("WL_TIMEOUT", "soon")

	assert.Equal(t, 4, c.MayInt("WORKERS", 4))
	assert.True(t, c.MayBool("SWAGGER", true))
	assert.Equal(t, time.Second, c.MayDuration("TIMEOUT", time.Second))
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("WL_")
	t.Setenv("WL_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("WL_BLANK", " , ")

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.MayCSV("ORIGINS", nil))
	assert.Equal(t, []string{"*"}, c.MayCSV("BLANK", []string{"*"}))
	assert.Nil(t, c.MayCSV("MISSING", nil))
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("WL_")
	t.Setenv("WL_GRANULARITY", "Variant")

	assert.Equal(t, "Variant", c.MayEnum("GRANULARITY", "language", "language", "variant"))
	assert.Equal(t, "language", c.MayEnum("MISSING", "language", "language", "variant"))

	t.Setenv("WL_GRANULARITY", "dialect")
	assert.Panics(t, func() { c.MayEnum("GRANULARITY", "language", "language", "variant") })
}

func TestMustString(t *testing.T) {
	c := New().Prefix("WL_")
	t.Setenv("WL_NAME", " wordlang ")

	assert.Equal(t, "wordlang", c.MustString("NAME"))
	assert.Panics(t, func() { c.MustString("MISSING") })
}
