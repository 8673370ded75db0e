package convert

import (
	"strings"

	"github.com/mj1618/rx2uitest/internal/translate"
)

// Default names used by generated test classes.
const (
	DefaultNamespace   = "XamarinTests"
	DefaultBaseFixture = "BaseTestFixture"
)

// testUsings open every generated test class.
var testUsings = []string{
	"using System;",
	"using System.Linq;",
	"using NUnit.Framework;",
	"using Xamarin.UITest;",
	"using Xamarin.UITest.Queries;",
}

// Options control the generated class declaration.
type Options struct {
	Namespace   string
	BaseFixture string
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Namespace) == "" {
		o.Namespace = DefaultNamespace
	}
	if strings.TrimSpace(o.BaseFixture) == "" {
		o.BaseFixture = DefaultBaseFixture
	}
	return o
}

// GeneratedFile is one output buffer and the file name it should be written as.
type GeneratedFile struct {
	Name    string `yaml:"name"    json:"name"`
	Content string `yaml:"content" json:"content"`
}

// testFileName returns "<Ident(name)>Tests.cs" together with the class name.
func testFileName(name string) (file, class string) {
	class = Ident(name) + "Tests"
	return class + ".cs", class
}

// renderTestClass assembles a test fixture with a single test method whose
// body is the translated lines in the order given.
func renderTestClass(class string, lines []translate.Line, opts Options) string {
	opts = opts.withDefaults()
	var b strings.Builder
	for _, u := range testUsings {
		b.WriteString(u)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("namespace " + opts.Namespace + "\n")
	b.WriteString("{\n")
	b.WriteString("    [TestFixture]\n")
	b.WriteString("    public class " + class + " : " + opts.BaseFixture + "\n")
	b.WriteString("    {\n")
	b.WriteString("        [Test]\n")
	b.WriteString("        public void " + class + "Main()\n")
	b.WriteString("        {\n")
	for _, l := range lines {
		for _, text := range l.Lines() {
			b.WriteString("            ")
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}
