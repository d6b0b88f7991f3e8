package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/token"
)

func TestParsePropertyGroup(t *testing.T) {
	p, err := ParseString(`<Project><PropertyGroup><Z>1</Z><A>2</A><E/></PropertyGroup></Project>`)
	if err != nil {
		t.Fatal(err)
	}
	pgs := p.PropertyGroups()
	if len(pgs) != 1 {
		t.Fatalf("got %d property groups", len(pgs))
	}
	var got []string
	for _, prop := range pgs[0].Properties() {
		got = append(got, prop.Name+"="+prop.Text())
	}
	if diff := cmp.Diff([]string{"Z=1", "A=2", "E="}, got); diff != "" {
		t.Errorf("properties (-want +got):\n%s", diff)
	}
	if pgs[0].Get("E").Value == nil {
		t.Errorf("empty property parsed as missing")
	}
}

func TestParseChoose(t *testing.T) {
	in := `<Project>
  <Choose>
    <!-- first -->
    <When Condition="'$(A)' == '1'">
      <PropertyGroup><X>1</X></PropertyGroup>
    </When>
    <When Condition="'$(A)' == '2'">
      <Choose>
        <When Condition="true"><ItemGroup><I Include="i" /></ItemGroup></When>
      </Choose>
    </When>
    <!-- last -->
    <Otherwise>
      <!-- inside -->
      <PropertyGroup><X>3</X></PropertyGroup>
    </Otherwise>
    <!-- trailing -->
  </Choose>
</Project>`
	p, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	chs := p.Chooses()
	if len(chs) != 1 {
		t.Fatalf("got %d chooses", len(chs))
	}
	ch := chs[0]
	var conds []string
	for _, w := range ch.Whens {
		conds = append(conds, w.Condition)
	}
	if diff := cmp.Diff([]string{"'$(A)' == '1'", "'$(A)' == '2'"}, conds); diff != "" {
		t.Errorf("conditions (-want +got):\n%s", diff)
	}
	if ch.Otherwise == nil {
		t.Fatal("missing otherwise")
	}
	if len(ch.Whens[0].Leading) != 1 || ch.Whens[0].Leading[0].Text != " first " {
		t.Errorf("leading comments of first when: %+v", ch.Whens[0].Leading)
	}
	if len(ch.Whens[1].Leading) != 0 {
		t.Errorf("unexpected leading comments on second when")
	}
	if len(ch.Otherwise.Leading) != 1 || ch.Otherwise.Leading[0].Text != " last " {
		t.Errorf("leading comments of otherwise: %+v", ch.Otherwise.Leading)
	}
	if len(ch.Otherwise.Entries) != 2 {
		t.Errorf("otherwise has %d entries", len(ch.Otherwise.Entries))
	}
	if len(ch.Trailing) != 1 || ch.Trailing[0].Text != " trailing " {
		t.Errorf("trailing comments: %+v", ch.Trailing)
	}
	if n := len(ch.Whens[1].Chooses()); n != 1 {
		t.Errorf("nested chooses: %d", n)
	}
}

func TestParseItems(t *testing.T) {
	in := `<Project>
  <ItemGroup>
    <Compile Include="b.cs" Link="attr" Visible="false">
      <Link>elt</Link>
      <DependentUpon></DependentUpon>
    </Compile>
    <Compile Remove="a.cs" />
    <None Update="x.txt" Exclude="y.txt" Condition="true" />
  </ItemGroup>
</Project>`
	p, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	items := p.ItemGroups()[0].Items()
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	c := items[0]
	if c.Op != ir.Include || c.Spec != "b.cs" {
		t.Errorf("unexpected first item %+v", c)
	}
	if diff := cmp.Diff(map[string]string{"Link": "attr", "Visible": "false"}, c.AttrMetadata); diff != "" {
		t.Errorf("attribute metadata (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"Link": "elt", "DependentUpon": ""}, c.Metadata); diff != "" {
		t.Errorf("element metadata (-want +got):\n%s", diff)
	}
	if items[1].Op != ir.Remove || items[1].Metadata != nil || items[1].AttrMetadata != nil {
		t.Errorf("unexpected second item %+v", items[1])
	}
	u := items[2]
	if u.Op != ir.Update || u.Exclude != "y.txt" || u.Condition != "true" || u.AttrMetadata != nil {
		t.Errorf("unexpected third item %+v", u)
	}
}

func TestParseTarget(t *testing.T) {
	in := `<Project>
  <UsingTask TaskName="Zip" AssemblyFile="tasks.dll" />
  <Target Name="Build" DependsOnTargets="Restore; ;Compile" Condition="'$(X)' != ''">
    <!-- step -->
    <Exec Command="make" ContinueOnError="true">
      <Output TaskParameter="ExitCode" PropertyName="Code" />
      <Output TaskParameter="Lines" ItemName="Out" Condition="true" />
    </Exec>
    <PropertyGroup><P>1</P></PropertyGroup>
    <OnError ExecuteTargets="Clean;Report" />
  </Target>
</Project>`
	p, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.UsingTasks()) != 1 || p.UsingTasks()[0].AssemblyFile != "tasks.dll" {
		t.Errorf("unexpected using tasks %+v", p.UsingTasks())
	}
	tg := p.Target("Build")
	if tg == nil {
		t.Fatal("missing target")
	}
	if diff := cmp.Diff([]string{"Restore", "Compile"}, tg.DependsOnTargets); diff != "" {
		t.Errorf("depends (-want +got):\n%s", diff)
	}
	if len(tg.Elements) != 4 {
		t.Fatalf("got %d target elements", len(tg.Elements))
	}
	if _, ok := tg.Elements[0].(*ir.Comment); !ok {
		t.Errorf("first element is %T", tg.Elements[0])
	}
	exec := tg.Tasks()[0]
	want := &ir.Task{
		Name:            "Exec",
		ContinueOnError: "true",
		Params:          map[string]string{"Command": "make"},
		Outputs: []*ir.TaskOutput{
			{TaskParameter: "ExitCode", PropertyName: "Code"},
			{TaskParameter: "Lines", ItemName: "Out", Condition: "true"},
		},
	}
	if diff := cmp.Diff(want, exec); diff != "" {
		t.Errorf("task (-want +got):\n%s", diff)
	}
	oe, ok := tg.Elements[3].(*ir.OnError)
	if !ok {
		t.Fatalf("last element is %T", tg.Elements[3])
	}
	if diff := cmp.Diff([]string{"Clean", "Report"}, oe.ExecuteTargets); diff != "" {
		t.Errorf("on error (-want +got):\n%s", diff)
	}
}

func TestParseProjectAttrs(t *testing.T) {
	in := `<?xml version="1.0" encoding="utf-8"?>
<!-- top -->
<Project Sdk="Microsoft.NET.Sdk" DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <Import Project="a.props" Condition="Exists('a.props')" />
  <ImportGroup Label="Ext">
    <!-- ext -->
    <Import Project="b.targets" Sdk="S" Version="1.0" />
  </ImportGroup>
</Project>
<!-- bottom -->
`
	p, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.New()
	want.Sdk = "Microsoft.NET.Sdk"
	want.DefaultTargets = "Build"
	want.Namespace = "http://schemas.microsoft.com/developer/msbuild/2003"
	want.Header = []*ir.Comment{ir.NewComment(" top ")}
	want.Footer = []*ir.Comment{ir.NewComment(" bottom ")}
	want.AddImport("a.props").WithCondition("Exists('a.props')")
	g := want.AddImportGroup()
	g.Label = "Ext"
	g.AddComment(" ext ")
	g.Add("b.targets").WithSdk("S").Version = "1.0"
	if !ir.Equal(want, p) {
		t.Errorf("unexpected tree:\n%s", cmp.Diff(want, p))
	}
}

func TestParseNoComments(t *testing.T) {
	in := `<!-- h --><Project>
  <!-- a -->
  <PropertyGroup><!-- b --><A>1</A></PropertyGroup>
  <ItemGroup><I Include="x"><!-- c --></I></ItemGroup>
  <Choose><!-- d --><When Condition="1"></When></Choose>
</Project>`
	p, err := ParseString(in, ParseComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Comments()) != 0 || len(p.Header) != 0 {
		t.Errorf("comments kept")
	}
	if len(p.PropertyGroups()[0].Entries) != 1 {
		t.Errorf("property group comment kept")
	}
	if len(p.Chooses()[0].Whens[0].Leading) != 0 {
		t.Errorf("choose comment kept")
	}
	if _, err := ParseString(in); err == nil {
		t.Errorf("comment inside item accepted")
	}
}

func TestParseUnknownTag(t *testing.T) {
	in := "<Project>\n  <PropertyGroup />\n  <Bogus />\n</Project>\n"
	_, err := ParseString(in, ParseFilename("a.proj"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("%v is not ErrParse", err)
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("%T is not a FormatError", err)
	}
	if fe.Context != "Project" || fe.Construct != "<Bogus>" {
		t.Errorf("unexpected context %q construct %q", fe.Context, fe.Construct)
	}
	if fe.Pos == nil || fe.Pos.Line() != 3 || fe.Pos.Col() != 3 {
		t.Fatalf("unexpected position %v", fe.Pos)
	}
	msg := err.Error()
	for _, want := range []string{"<Bogus>", "<Project>", "a.proj:3:3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q does not mention %q", msg, want)
		}
	}
}

func TestParseUnknownAttr(t *testing.T) {
	in := "<Project>\n  <Target Name=\"T\" Bogus=\"1\" />\n</Project>\n"
	_, err := ParseString(in)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v", err)
	}
	if fe.Construct != "attribute Bogus" {
		t.Errorf("construct %q", fe.Construct)
	}
	if fe.Pos == nil || fe.Pos.Line() != 2 || fe.Pos.Col() != 20 {
		t.Fatalf("unexpected position %v", fe.Pos)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		tok  error
	}{
		{name: "root", in: `<Target Name="x" />`},
		{name: "project attr", in: `<Project Foo="1" />`},
		{name: "project text", in: `<Project>hello</Project>`},
		{name: "property child", in: `<Project><PropertyGroup><A><B /></A></PropertyGroup></Project>`},
		{name: "property attr", in: `<Project><PropertyGroup><A Include="x" /></PropertyGroup></Project>`},
		{name: "property comment", in: `<Project><PropertyGroup><A><!-- c -->1</A></PropertyGroup></Project>`},
		{name: "item no op", in: `<Project><ItemGroup><I Exclude="x" /></ItemGroup></Project>`},
		{name: "item two ops", in: `<Project><ItemGroup><I Include="x" Remove="y" /></ItemGroup></Project>`},
		{name: "item empty spec", in: `<Project><ItemGroup><I Include="" /></ItemGroup></Project>`},
		{name: "item dup metadata", in: `<Project><ItemGroup><I Include="x"><M>1</M><M>2</M></I></ItemGroup></Project>`},
		{name: "item metadata attr", in: `<Project><ItemGroup><I Include="x"><M A="1">1</M></I></ItemGroup></Project>`},
		{name: "import no project", in: `<Project><Import Sdk="x" /></Project>`},
		{name: "import group child", in: `<Project><ImportGroup><Target Name="x" /></ImportGroup></Project>`},
		{name: "using task no source", in: `<Project><UsingTask TaskName="x" /></Project>`},
		{name: "using task no name", in: `<Project><UsingTask AssemblyFile="x" /></Project>`},
		{name: "target no name", in: `<Project><Target /></Project>`},
		{name: "target reserved", in: `<Project><Target Name="x"><Choose /></Target></Project>`},
		{name: "task comment", in: `<Project><Target Name="x"><Exec><!-- c --></Exec></Target></Project>`},
		{name: "task child", in: `<Project><Target Name="x"><Exec><Foo /></Exec></Target></Project>`},
		{name: "output no param", in: `<Project><Target Name="x"><Exec><Output PropertyName="p" /></Exec></Target></Project>`},
		{name: "output two dests", in: `<Project><Target Name="x"><Exec><Output TaskParameter="t" PropertyName="p" ItemName="i" /></Exec></Target></Project>`},
		{name: "output no dest", in: `<Project><Target Name="x"><Exec><Output TaskParameter="t" /></Exec></Target></Project>`},
		{name: "onerror no targets", in: `<Project><Target Name="x"><OnError /></Target></Project>`},
		{name: "choose empty", in: `<Project><Choose /></Project>`},
		{name: "choose otherwise only", in: `<Project><Choose><Otherwise /></Choose></Project>`},
		{name: "choose when after otherwise", in: `<Project><Choose><When Condition="1" /><Otherwise /><When Condition="2" /></Choose></Project>`},
		{name: "choose two otherwise", in: `<Project><Choose><When Condition="1" /><Otherwise /><Otherwise /></Choose></Project>`},
		{name: "when no condition", in: `<Project><Choose><When /></Choose></Project>`},
		{name: "clause target", in: `<Project><Choose><When Condition="1"><Target Name="x" /></When></Choose></Project>`},
		{name: "duplicate attr", in: `<Project><Target Name="x" Name="y" /></Project>`},
		{name: "unterminated", in: `<Project><PropertyGroup>`, tok: token.ErrUnterminated},
		{name: "mismatch", in: `<Project></PropertyGroup>`, tok: token.ErrDocBalance},
		{name: "bad syntax", in: `<Project><A =></Project>`, tok: token.ErrSyntax},
		{name: "doctype", in: `<!DOCTYPE x><Project />`, tok: token.ErrUnsupported},
		{name: "empty", in: ``, tok: token.ErrEmptyDoc},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseString(tc.in)
			if err == nil {
				t.Fatalf("expected error, got %+v", p)
			}
			if p != nil {
				t.Errorf("partial tree returned")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v is not ErrParse", err)
			}
			if tc.tok != nil && !errors.Is(err, tc.tok) {
				t.Errorf("%v is not %v", err, tc.tok)
			}
		})
	}
}
