package convert

import (
	"fmt"
	"strings"
)

// Target platforms for the generated base fixture.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Project file defaults.
const (
	DefaultTargetFramework = "netcoreapp3.1"
	DefaultNUnitVersion    = "3.13.2"
	DefaultUITestVersion   = "3.2.2"
	ProjectFileName        = "XamarinTests.csproj"
)

// ScaffoldDirs are created once under every output tree.
var ScaffoldDirs = []string{"Pages", "Tests"}

// ScaffoldOptions configure the shared base fixture and project file.
type ScaffoldOptions struct {
	Namespace       string
	BaseFixture     string
	Platform        string
	AppPath         string
	TargetFramework string
	NUnitVersion    string
	UITestVersion   string
}

func (o ScaffoldOptions) withDefaults() ScaffoldOptions {
	cls := Options{Namespace: o.Namespace, BaseFixture: o.BaseFixture}.withDefaults()
	o.Namespace, o.BaseFixture = cls.Namespace, cls.BaseFixture
	if o.Platform == "" {
		o.Platform = PlatformAndroid
	}
	if o.TargetFramework == "" {
		o.TargetFramework = DefaultTargetFramework
	}
	if o.NUnitVersion == "" {
		o.NUnitVersion = DefaultNUnitVersion
	}
	if o.UITestVersion == "" {
		o.UITestVersion = DefaultUITestVersion
	}
	return o
}

// BaseFixture renders the fixture every generated test class derives from.
func BaseFixture(opts ScaffoldOptions) string {
	opts = opts.withDefaults()
	onAndroid := strings.EqualFold(opts.Platform, PlatformAndroid)

	configure := "                .Android\n"
	appFile := ".ApkFile"
	if !onAndroid {
		configure = "                .iOS\n"
		appFile = ".AppBundle"
	}
	if opts.AppPath != "" {
		configure += fmt.Sprintf("                %s(%q)\n", appFile, opts.AppPath)
	}

	var b strings.Builder
	b.WriteString("using NUnit.Framework;\n")
	b.WriteString("using Xamarin.UITest;\n")
	b.WriteString("\n")
	b.WriteString("namespace " + opts.Namespace + "\n")
	b.WriteString("{\n")
	b.WriteString("    public class " + opts.BaseFixture + "\n")
	b.WriteString("    {\n")
	b.WriteString("        protected IApp app;\n")
	b.WriteString("        protected bool OnAndroid;\n")
	b.WriteString("\n")
	b.WriteString("        [SetUp]\n")
	b.WriteString("        public virtual void BeforeEachTest()\n")
	b.WriteString("        {\n")
	fmt.Fprintf(&b, "            OnAndroid = %t;\n", onAndroid)
	b.WriteString("            app = ConfigureApp\n")
	b.WriteString(configure)
	b.WriteString("                .StartApp();\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

// Project renders the SDK-style test project file.
func Project(opts ScaffoldOptions) string {
	opts = opts.withDefaults()
	return fmt.Sprintf(`<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>%s</TargetFramework>
  </PropertyGroup>
  <ItemGroup>
    <PackageReference Include="NUnit" Version="%s" />
    <PackageReference Include="Xamarin.UITest" Version="%s" />
  </ItemGroup>
</Project>
`, opts.TargetFramework, opts.NUnitVersion, opts.UITestVersion)
}

// ScaffoldFiles returns the base fixture and project file for an output tree.
func ScaffoldFiles(opts ScaffoldOptions) []GeneratedFile {
	opts = opts.withDefaults()
	return []GeneratedFile{
		{Name: opts.BaseFixture + ".cs", Content: BaseFixture(opts)},
		{Name: ProjectFileName, Content: Project(opts)},
	}
}
