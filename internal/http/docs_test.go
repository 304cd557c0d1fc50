package http

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/guttosm/coffeemaker-service/docs"
	"github.com/guttosm/coffeemaker-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Tags []string `json:"tags"`
	} `json:"paths"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

var (
	tagsAnnotation   = regexp.MustCompile(`^//\s*@Tags\s+(.+)$`)
	routerAnnotation = regexp.MustCompile(`^//\s*@Router\s+(\S+)\s+\[(\w+)\]`)
	pathParam        = regexp.MustCompile(`\{(\w+)\}`)
)

func loadSwaggerDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc
}

// annotatedOperations reads the @Tags and @Router lines of the handlers in
// this package, keyed by "METHOD path".
func annotatedOperations(t *testing.T) map[string][]string {
	t.Helper()
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	ops := map[string][]string{}
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		data, err := os.ReadFile(file)
		require.NoError(t, err)

		var tags []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if m := tagsAnnotation.FindStringSubmatch(line); m != nil {
				tags = strings.Split(strings.ReplaceAll(m[1], " ", ""), ",")
			}
			if m := routerAnnotation.FindStringSubmatch(line); m != nil {
				ops[strings.ToUpper(m[2])+" "+m[1]] = tags
				tags = nil
			}
		}
	}
	return ops
}

func TestSwaggerDoc_MatchesAnnotations(t *testing.T) {
	doc := loadSwaggerDoc(t)

	documented := map[string][]string{}
	for path, methods := range doc.Paths {
		for method, op := range methods {
			documented[strings.ToUpper(method)+" "+path] = op.Tags
		}
	}

	assert.Equal(t, annotatedOperations(t), documented)
}

func TestSwaggerDoc_TagsAreDeclared(t *testing.T) {
	doc := loadSwaggerDoc(t)

	declared := map[string]bool{}
	for _, tag := range doc.Tags {
		declared[tag.Name] = true
	}
	for path, methods := range doc.Paths {
		for method, op := range methods {
			for _, tag := range op.Tags {
				assert.True(t, declared[tag], "%s %s uses undeclared tag %q", method, path, tag)
			}
		}
	}
}

func TestSwaggerDoc_PathsAreRouted(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.EventService = new(mocks.MockEventService)
	router := NewRouter(NewHandler(new(mocks.MockCoffeeMaker)), NewHealthHandler(), &cfg)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for path, methods := range loadSwaggerDoc(t).Paths {
		ginPath := pathParam.ReplaceAllString(path, ":$1")
		for method := range methods {
			assert.True(t, registered[strings.ToUpper(method)+" "+ginPath], "documented %s %s is not routed", method, path)
		}
	}
}
