package app

import (
	"path"
	"strings"
)

// Role is an engineering area a changed file belongs to.
type Role string

// Roles in classification precedence order.
const (
	RoleConfiguration  Role = "configuration"
	RoleDocumentation  Role = "documentation"
	RoleInfrastructure Role = "infrastructure"
	RoleTest           Role = "test"
	RoleBackend        Role = "backend"
	RoleFrontend       Role = "frontend"
	RoleOther          Role = "other"
)

// Roles lists all roles in classification precedence order.
var Roles = []Role{
	RoleConfiguration,
	RoleDocumentation,
	RoleInfrastructure,
	RoleTest,
	RoleBackend,
	RoleFrontend,
	RoleOther,
}

// roleRule matches a lower-cased, slash separated path.
// A rule matches when any of its predicates does.
type roleRule struct {
	role       Role
	names      []string // exact file names
	prefixes   []string // file name prefixes
	suffixes   []string // file name suffixes
	infixes    []string // file name substrings
	extensions []string
	dirs       []string // any directory segment
	paths      []string // substrings of the whole path
}

// roleRules is evaluated in order, first match wins.
var roleRules = []roleRule{
	{
		role: RoleConfiguration,
		names: []string{
			"package.json", "package-lock.json", "npm-shrinkwrap.json", "yarn.lock", "pnpm-lock.yaml",
			"go.mod", "go.sum", "pom.xml", "build.gradle", "build.gradle.kts", "settings.gradle",
			"settings.gradle.kts", "gradle.properties", "gradlew", "gradlew.bat", "cargo.toml",
			"requirements.txt", "pipfile", "pyproject.toml", "setup.py", "setup.cfg", "gemfile",
			"composer.json", "makefile", "tsconfig.json", "jsconfig.json", ".babelrc", ".eslintrc",
			".prettierrc", ".editorconfig", ".npmrc", ".nvmrc", "application.properties",
			"application.yml", "application.yaml",
		},
		prefixes: []string{
			".env", "tsconfig.", "vite.config.", "webpack.config.", "babel.config.", "rollup.config.",
			"next.config.", "nuxt.config.", "vue.config.", "svelte.config.", "tailwind.config.",
			"postcss.config.", "jest.config.", "vitest.config.", "eslint.config.", ".eslintrc.",
			".prettierrc.",
		},
		extensions: []string{".lock"},
	},
	{
		role:       RoleDocumentation,
		prefixes:   []string{"readme"},
		extensions: []string{".md", ".mdx", ".markdown", ".rst", ".adoc"},
		dirs:       []string{"docs"},
	},
	{
		role:       RoleInfrastructure,
		names:      []string{"dockerfile", ".dockerignore", "jenkinsfile", "procfile", "vagrantfile"},
		prefixes:   []string{"dockerfile.", "docker-compose", "compose."},
		suffixes:   []string{".dockerfile"},
		extensions: []string{".yml", ".yaml", ".tf", ".tfvars", ".hcl"},
		dirs:       []string{"terraform", "k8s", "kubernetes", "helm", "ansible", ".circleci"},
		paths:      []string{".github/workflows/"},
	},
	{
		role:     RoleTest,
		prefixes: []string{"test_"},
		suffixes: []string{"test.java", "tests.java", "test.kt", "_spec.rb"},
		infixes:  []string{".test.", ".spec.", "_test."},
		dirs:     []string{"test", "tests", "__tests__", "__mocks__", "spec", "specs", "e2e", "testdata"},
	},
	{
		role: RoleBackend,
		extensions: []string{
			".java", ".kt", ".scala", ".groovy", ".go", ".py", ".rb", ".php", ".cs", ".rs", ".ex",
			".exs", ".erl", ".clj", ".sql",
		},
		dirs:  []string{"backend", "server"},
		paths: []string{"src/main/java/", "src/main/kotlin/", "src/main/scala/", "src/main/resources/"},
	},
	{
		role: RoleFrontend,
		extensions: []string{
			".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue", ".svelte", ".css", ".scss", ".sass",
			".less", ".html", ".htm",
		},
		dirs: []string{
			"frontend", "client", "web", "webapp", "ui", "components", "pages", "views", "styles",
			"public", "assets",
		},
	},
}

// ClassifyPath maps a changed file's path to a role.
// Rules are evaluated in fixed precedence order, RoleOther is returned when none matches.
func ClassifyPath(p string) Role {
	p = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p), `\`, "/"))
	p = strings.TrimPrefix(p, "./")
	if p == "" {
		return RoleOther
	}

	segments := strings.Split(p, "/")
	name := segments[len(segments)-1]
	dirs := segments[:len(segments)-1]
	ext := path.Ext(name)

	for _, r := range roleRules {
		if r.match(p, name, ext, dirs) {
			return r.role
		}
	}

	return RoleOther
}

func (r roleRule) match(p, name, ext string, dirs []string) bool {
	for _, n := range r.names {
		if name == n {
			return true
		}
	}
	for _, pr := range r.prefixes {
		if strings.HasPrefix(name, pr) {
			return true
		}
	}
	for _, s := range r.suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	for _, in := range r.infixes {
		if strings.Contains(name, in) {
			return true
		}
	}
	for _, e := range r.extensions {
		if ext == e {
			return true
		}
	}
	for _, d := range dirs {
		for _, rd := range r.dirs {
			if d == rd {
				return true
			}
		}
	}
	for _, sub := range r.paths {
		if strings.Contains(p, sub) {
			return true
		}
	}

	return false
}

// commitRoles returns distinct roles of files touched by the commit, in precedence order.
func commitRoles(c Commit) []Role {
	touched := make(map[Role]bool, len(Roles))
	for _, f := range c.Files {
		touched[ClassifyPath(f.Path)] = true
	}

	roles := make([]Role, 0, len(touched))
	for _, r := range Roles {
		if touched[r] {
			roles = append(roles, r)
		}
	}

	return roles
}
