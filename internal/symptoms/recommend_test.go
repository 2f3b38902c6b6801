package symptoms

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadRecommendations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommendations.csv")
	content := "symptom,recommendation_1,recommendation_2,recommendation_3\n" +
		"fever,Monitor temperature,Stay hydrated,\n" +
		"cough,Avoid irritants,,\n" +
		",ignored row,,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	recs, err := LoadRecommendations(path)
	if err != nil {
		t.Fatalf("LoadRecommendations: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("recs = %+v", recs)
	}
	if !reflect.DeepEqual(recs["fever"], []string{"Monitor temperature", "Stay hydrated"}) {
		t.Fatalf("fever recs = %v", recs["fever"])
	}
	if !reflect.DeepEqual(recs["cough"], []string{"Avoid irritants"}) {
		t.Fatalf("cough recs = %v", recs["cough"])
	}
}

func TestLoadRecommendationsMissingFile(t *testing.T) {
	if _, err := LoadRecommendations(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRecommendationsFallback(t *testing.T) {
	recs := Recommendations{"fever": {"Monitor temperature"}}
	if got := recs.For("fever"); !reflect.DeepEqual(got, []string{"Monitor temperature"}) {
		t.Fatalf("For(fever) = %v", got)
	}
	if got := recs.For("unknown"); !reflect.DeepEqual(got, DefaultRecommendations) {
		t.Fatalf("For(unknown) = %v, want defaults", got)
	}
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.csv")
	if err := WriteTemplate(path, []string{"cough", "fever"}); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if !strings.HasPrefix(string(b), "symptom,recommendation_1,recommendation_2,recommendation_3\n") {
		t.Fatalf("template header: %s", b)
	}

	recs, err := LoadRecommendations(path)
	if err != nil {
		t.Fatalf("LoadRecommendations: %v", err)
	}
	if !reflect.DeepEqual(recs["fever"], DefaultRecommendations) {
		t.Fatalf("template fever recs = %v", recs["fever"])
	}
}
