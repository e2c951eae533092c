package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults(viper.GetViper())

	if got := GetRefsPath(); got != "data.refs" {
		t.Errorf("expected data.refs, got %q", got)
	}
	if got := GetOutputFormat(); got != "text" {
		t.Errorf("expected text, got %q", got)
	}
	if GetVerbose() {
		t.Error("expected verbose to default to false")
	}
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults(viper.GetViper())
	viper.Set(KeyRefsPath, "snapshot.branches")
	viper.Set(KeyOutputFormat, "json")
	viper.Set(KeyVerbose, true)

	if got := GetRefsPath(); got != "snapshot.branches" {
		t.Errorf("expected snapshot.branches, got %q", got)
	}
	if got := GetOutputFormat(); got != "json" {
		t.Errorf("expected json, got %q", got)
	}
	if !GetVerbose() {
		t.Error("expected verbose to be true")
	}
}

func TestEmptyRefsPathFallsBack(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set(KeyRefsPath, "")
	if got := GetRefsPath(); got != "data.refs" {
		t.Errorf("expected data.refs, got %q", got)
	}
}
