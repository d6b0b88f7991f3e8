// Package ir provides the intermediate representation (IR) of project
// files: the nested, conditional XML documents describing properties, items,
// imports and targets for a build orchestration tool.
//
// # Overview
//
// A [Project] is the root of a tree of plain data nodes. Nodes never
// point back at their parents, so every tree is acyclic and can be shared
// between goroutines as long as nobody mutates it.
//
// Trees are produced by the parse package or assembled directly by callers,
// rendered by the encode package and checked by the validate package.
//
// # Node Kinds
//
// Every node has a [Kind]:
//
//   - Project level: PropertyGroup, ItemGroup, Import, ImportGroup,
//     UsingTask, Target, Choose, Comment
//   - PropertyGroup entries: Property, Comment
//   - ItemGroup entries: Item, Comment
//   - When/Otherwise entries: PropertyGroup, ItemGroup, Choose, Comment
//   - Target elements: PropertyGroup, ItemGroup, Task, OnError, Comment
//
// Each context has its own interface ([ProjectNode], [PropertyEntry],
// [ItemEntry], [ClauseEntry], [TargetElement], [ImportGroupEntry]) closed
// by an unexported method, so only the nodes legal in a context can be
// placed there and type switches over a context can be exhaustive.
//
// # Ordered Entries and Typed Views
//
// Containers store their children once, in document order: Project.Nodes,
// PropertyGroup.Entries, ItemGroup.Entries and so on. Typed views such as
// Project.Targets or PropertyGroup.Properties are computed by filtering the
// ordered entries on each call. The two views therefore always contain the
// same nodes, whatever sequence of Append, Insert and Remove calls built
// the tree.
//
// # Items and Metadata
//
// Item metadata may be written as child elements or as attributes:
//
//	<Compile Include="a.cs" Link="x.cs">
//	  <Link>y.cs</Link>
//	</Compile>
//
// The two forms are kept in two maps, Item.Metadata and Item.AttrMetadata.
// Neither is promoted into the other and they may share keys.
//
// # Creating Trees
//
//	p := ir.New()
//	p.Sdk = "Microsoft.NET.Sdk"
//	pg := p.AddPropertyGroup()
//	pg.Add("TargetFramework", "net8.0")
//	ig := p.AddItemGroup()
//	ig.Add("Compile", "x.cs").SetMetadata("Link", "y.cs")
//	t := p.AddTarget("Hello").After("Build")
//	t.Append(ir.Message("hello", "high"))
//
// # Equality
//
// [Equal] compares two trees structurally. It is the equality under which
// parsing a rendered tree gives back the original.
package ir
