package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/parse"
	"github.com/signadot/projtree/validate"
	"github.com/stretchr/testify/require"
)

func sampleProject() *ir.Project {
	p := ir.New()
	p.Sdk = "Microsoft.NET.Sdk"
	p.Header = []*ir.Comment{ir.NewComment(" generated ")}
	pg := p.AddPropertyGroup()
	pg.Add("TargetFramework", "net8.0")
	pg.Add("OutputType", "Exe")
	pg.AddComment(" paths ")
	pg.Add("OutDir", "bin/")
	pg.Add("BaseDir", "")
	ig := p.AddItemGroup().WithCondition("'$(OS)' == 'Windows_NT'")
	ig.Add("Compile", "b.cs").
		SetAttrMetadata("Visible", "false").
		SetAttrMetadata("Link", "x.cs").
		SetMetadata("Link", "y.cs").
		SetMetadata("AutoGen", "true")
	ig.Add("Compile", "a.cs")
	ig.Append(ir.NewRemoveItem("Compile", "old.cs"))
	ch := p.AddChoose()
	ch.AddWhen("'$(Configuration)' == 'Debug'").AddPropertyGroup().Add("Optimize", "false")
	ch.AddWhen("'$(Configuration)' == 'Release'").AddPropertyGroup().Add("Optimize", "true")
	ch.SetOtherwise().AddItemGroup().Add("None", "readme.md")
	tg := p.AddTarget("Build").DependsOn("Restore", "Compile")
	tg.Append(ir.Message("Building $(MSBuildProjectName)", "high"))
	exec := ir.Exec("make all").WithCondition("Exists('Makefile')")
	exec.ContinueOnError = "true"
	exec.OutputProperty("ExitCode", "Code")
	tg.Append(exec)
	tg.AddOnError("Clean")
	return p
}

const sampleText = `<!-- generated -->
<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net8.0</TargetFramework>
    <!-- paths -->
    <BaseDir />
    <OutDir>bin/</OutDir>
  </PropertyGroup>
  <ItemGroup Condition="'$(OS)' == 'Windows_NT'">
    <Compile Include="b.cs" Link="x.cs" Visible="false">
      <AutoGen>true</AutoGen>
      <Link>y.cs</Link>
    </Compile>
    <Compile Include="a.cs" />
    <Compile Remove="old.cs" />
  </ItemGroup>
  <Choose>
    <When Condition="'$(Configuration)' == 'Debug'">
      <PropertyGroup>
        <Optimize>false</Optimize>
      </PropertyGroup>
    </When>
    <When Condition="'$(Configuration)' == 'Release'">
      <PropertyGroup>
        <Optimize>true</Optimize>
      </PropertyGroup>
    </When>
    <Otherwise>
      <ItemGroup>
        <None Include="readme.md" />
      </ItemGroup>
    </Otherwise>
  </Choose>
  <Target Name="Build" DependsOnTargets="Restore;Compile">
    <Message Importance="high" Text="Building $(MSBuildProjectName)" />
    <Exec Condition="Exists('Makefile')" ContinueOnError="true" Command="make all">
      <Output TaskParameter="ExitCode" PropertyName="Code" />
    </Exec>
    <OnError ExecuteTargets="Clean" />
  </Target>
</Project>
`

func TestEncodeSample(t *testing.T) {
	got := MustString(sampleProject())
	if diff := cmp.Diff(sampleText, got); diff != "" {
		t.Errorf("encoding (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	trees := map[string]*ir.Project{
		"sample": sampleProject(),
		"empty":  ir.New(),
	}
	escapes := ir.New()
	escapes.Namespace = "http://schemas.microsoft.com/developer/msbuild/2003"
	escapes.Footer = []*ir.Comment{ir.NewComment("\n  multi\n  line\n")}
	escapes.AddPropertyGroup().WithCondition("a\tb\nc \"q\" <&>").Add("V", "  x & <y> \"z\"\r\n  ")
	escapes.AddItemGroup().Add("I", "a;b").
		SetAttrMetadata("Empty", "").
		SetMetadata("Empty", "").
		SetMetadata("Text", "line1\nline2")
	escapes.AddTarget("T").Append(ir.NewTask("Exec").SetParam("Command", ""))
	trees["escapes"] = escapes

	nested := ir.New()
	outer := nested.AddChoose()
	w := outer.AddWhen("1")
	w.Leading = []*ir.Comment{ir.NewComment(" lead ")}
	inner := w.AddChoose()
	inner.AddWhen("2").AddComment(" inside ")
	inner.SetOtherwise()
	outer.Trailing = []*ir.Comment{ir.NewComment(" trail ")}
	nested.AddImportGroup().WithCondition("x").Add("a.props").WithSdk("S")
	nested.AddUsingTask("Zip").FromFactory("RoslynCodeTaskFactory").Runtime = "CLR4"
	trees["nested"] = nested

	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tree, buf); err != nil {
				t.Fatal(err)
			}
			back, err := parse.Parse(buf.Bytes())
			if err != nil {
				t.Fatalf("%v\n%s", err, buf.String())
			}
			if !ir.Equal(tree, back) {
				t.Fatalf("round trip changed the tree:\n%s", cmp.Diff(tree, back))
			}
			if again := MustString(back); again != buf.String() {
				t.Errorf("encoding is not idempotent:\n%s", cmp.Diff(buf.String(), again))
			}
		})
	}
}

func TestPropertyGroupScenario(t *testing.T) {
	p, err := parse.ParseString(`<Project><PropertyGroup><Z>1</Z><A>2</A></PropertyGroup></Project>`)
	if err != nil {
		t.Fatal(err)
	}
	want := `<Project>
  <PropertyGroup>
    <A>2</A>
    <Z>1</Z>
  </PropertyGroup>
</Project>
`
	if got := MustString(p); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPropertyOrderInsensitive(t *testing.T) {
	a := ir.New()
	g := a.AddPropertyGroup()
	g.Add("B", "2")
	g.Add("A", "1")
	g.Add("C", "3")
	b := ir.New()
	g = b.AddPropertyGroup()
	g.Add("C", "3")
	g.Add("A", "1")
	g.Add("B", "2")
	if MustString(a) != MustString(b) {
		t.Errorf("property order changed the encoding")
	}
}

func TestItemOrderSensitive(t *testing.T) {
	a := ir.New()
	a.AddItemGroup().Add("I", "1")
	a.ItemGroups()[0].Add("I", "2")
	b := ir.New()
	b.AddItemGroup().Add("I", "2")
	b.ItemGroups()[0].Add("I", "1")
	if MustString(a) == MustString(b) {
		t.Errorf("item order was not kept")
	}
}

func TestEncodeHeader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.New(), buf, EncodeXMLHeader(true)); err != nil {
		t.Fatal(err)
	}
	want := xmlHeader + "\n<Project />\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestEncodeColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()
	buf := bytes.NewBuffer(nil)
	if err := Encode(sampleProject(), buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no color escapes in output")
	}
	plain := bytes.NewBuffer(nil)
	if err := Encode(sampleProject(), plain, EncodeColors(nil)); err != nil {
		t.Fatal(err)
	}
	if plain.String() != sampleText {
		t.Errorf("nil colors changed the output")
	}
}

// contractFaults maps a name to a change that makes sampleProject
// impossible to encode.
func contractFaults() map[string]func(p *ir.Project) {
	return map[string]func(p *ir.Project){
		"nil node": func(p *ir.Project) { p.Append(nil) },
		"nil property": func(p *ir.Project) {
			p.AddPropertyGroup().Append((*ir.Property)(nil))
		},
		"missing value": func(p *ir.Project) {
			p.AddPropertyGroup().Append(&ir.Property{Name: "A"})
		},
		"bad property name": func(p *ir.Project) { p.AddPropertyGroup().Add("1A", "x") },
		"empty item spec":   func(p *ir.Project) { p.AddItemGroup().Add("I", "") },
		"bad operation": func(p *ir.Project) {
			p.AddItemGroup().Add("I", "x").Op = ir.Operation(17)
		},
		"reserved metadata": func(p *ir.Project) {
			p.AddItemGroup().Add("I", "x").SetAttrMetadata("Exclude", "y")
		},
		"bad metadata name": func(p *ir.Project) {
			p.AddItemGroup().Add("I", "x").SetMetadata("a b", "y")
		},
		"empty choose":   func(p *ir.Project) { p.AddChoose() },
		"when condition": func(p *ir.Project) { p.AddChoose().AddWhen("") },
		"output destinations": func(p *ir.Project) {
			p.AddTarget("T").AddTask("Exec").OutputProperty("X", "P").ItemName = "I"
		},
		"output no destination": func(p *ir.Project) {
			p.AddTarget("T").AddTask("Exec").OutputProperty("X", "")
		},
		"reserved task":  func(p *ir.Project) { p.AddTarget("T").AddTask("Output") },
		"reserved param": func(p *ir.Project) { p.AddTarget("T").AddTask("Exec").SetParam("Condition", "x") },
		"target name":    func(p *ir.Project) { p.AddTarget("") },
		"target list":    func(p *ir.Project) { p.AddTarget("T").DependsOn("a;b") },
		"on error":       func(p *ir.Project) { p.AddTarget("T").AddOnError() },
		"comment dashes": func(p *ir.Project) { p.AddComment("a -- b") },
		"comment end":    func(p *ir.Project) { p.AddComment("a -") },
		"invalid char":   func(p *ir.Project) { p.AddPropertyGroup().Add("A", "\x00") },
		"import":         func(p *ir.Project) { p.AddImport("") },
		"using task":     func(p *ir.Project) { p.AddUsingTask("Zip") },
		"attribute metadata include": func(p *ir.Project) {
			p.AddItemGroup().Add("I", "x").SetAttrMetadata("Include", "y")
		},
		"structural task name": func(p *ir.Project) { p.AddTarget("T").AddTask("PropertyGroup") },
		"header comment":       func(p *ir.Project) { p.Header = append(p.Header, ir.NewComment("a\r\nb")) },
		"condition char": func(p *ir.Project) {
			p.AddItemGroup().WithCondition("\x01")
		},
	}
}

func TestContractErrors(t *testing.T) {
	for name, mut := range contractFaults() {
		t.Run(name, func(t *testing.T) {
			p := sampleProject()
			mut(p)
			buf := bytes.NewBuffer(nil)
			err := Encode(p, buf)
			if err == nil {
				t.Fatalf("expected error, got\n%s", buf.String())
			}
			if !errors.Is(err, ErrContract) {
				t.Errorf("%v is not ErrContract", err)
			}
			var ce *ContractError
			if !errors.As(err, &ce) || !strings.HasPrefix(ce.Path, "/") {
				t.Errorf("unexpected error %#v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("output written on error:\n%s", buf.String())
			}
		})
	}
}

func TestSampleValid(t *testing.T) {
	require.Empty(t, validate.Validate(sampleProject()))
}

func TestContractFaultsAreViolations(t *testing.T) {
	for name, mut := range contractFaults() {
		t.Run(name, func(t *testing.T) {
			p := sampleProject()
			mut(p)
			require.NotEmpty(t, validate.Validate(p))
			require.ErrorIs(t, Encode(p, bytes.NewBuffer(nil)), ErrContract)
		})
	}
}

func TestContractErrorPath(t *testing.T) {
	p := ir.New()
	p.AddTarget("Build").AddTask("Exec").OutputProperty("", "P")
	err := Encode(p, bytes.NewBuffer(nil))
	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v", err)
	}
	if ce.Path != "/Project/Target/Exec/Output" {
		t.Errorf("path %q", ce.Path)
	}
}
