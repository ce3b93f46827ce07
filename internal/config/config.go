package config

import (
	"os"
	"strings"
)

type Config struct {
	Port             string
	TmpDir           string
	DefaultLanguages []string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	tmpDir := os.Getenv("TMP_DIR")
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}

	langs := splitLangs(os.Getenv("DEFAULT_LANGS"))
	if len(langs) == 0 {
		langs = []string{"ja", "en"}
	}

	return Config{
		Port:             port,
		TmpDir:           tmpDir,
		DefaultLanguages: langs,
	}
}

func splitLangs(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
