package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/jarijaas/go-igapi/pkg/common"
)

func TestGenerateJazoest(t *testing.T) {
	cases := []struct {
		seed     string
		expected string
	}{
		{"", "20"},
		{"abc", "2294"},
		{"f3b36c0a-86e2-4b0d-8b8e-54b4e1b22a8f", "22508"},
	}

	for _, c := range cases {
		if got := GenerateJazoest(c.seed); got != c.expected {
			t.Errorf("jazoest of %q should be %s, was %s", c.seed, c.expected, got)
		}
	}
}

func TestGenerateBreadcrumb(t *testing.T) {
	out := GenerateBreadcrumb(10, rand.New(rand.NewSource(1)))

	lines := strings.Split(out, "\n")
	if len(lines) != 3 || lines[2] != "" {
		t.Fatalf("breadcrumb should be two newline-terminated lines, was %q", out)
	}

	data, err := base64.StdEncoding.DecodeString(lines[1])
	if err != nil {
		t.Fatal(err)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 4 {
		t.Fatalf("breadcrumb data should have 4 fields, was %q", string(data))
	}
	if fields[0] != "10" {
		t.Errorf("breadcrumb size field should be 10, was %s", fields[0])
	}
	if events, err := strconv.Atoi(fields[2]); err != nil || events < 1 {
		t.Errorf("breadcrumb event count should be at least 1, was %s", fields[2])
	}

	mac := hmac.New(sha256.New, []byte(common.BreadcrumbKey))
	mac.Write(data)
	if lines[0] != base64.StdEncoding.EncodeToString(mac.Sum(nil)) {
		t.Error("breadcrumb digest line does not verify against the data line")
	}
}

func TestGenerateBreadcrumbEmptyInput(t *testing.T) {
	out := GenerateBreadcrumb(0, rand.New(rand.NewSource(1)))

	data, err := base64.StdEncoding.DecodeString(strings.Split(out, "\n")[1])
	if err != nil {
		t.Fatal(err)
	}

	fields := strings.Fields(string(data))
	if fields[2] != "1" {
		t.Errorf("event count for empty input should clamp to 1, was %s", fields[2])
	}
}
