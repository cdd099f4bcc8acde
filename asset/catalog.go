package asset

const treeArt = `
        \/ |    |/
      \/ / \||/  /_/___/_
       \/   |/ \/
  _\__\_\   |  /_____/_
         \  | /          /
__ _-----` + "`" + `  |{,-----------~
          \ }{
           }{{
           }}{
           {{}
        ,=~{}{-_
`

const snowmanArt = `
  _==_ _
_,(",)|_|
 \/. \-|
 ( :  )|
`

const houseArt = "" +
	"       `'::.\n" +
	"  _________H\n" +
	` /\     _   \` + "\n" +
	`/  \___/^\___\` + "\n" +
	"|  | []   [] |\n" +
	"|  |   .-.   |\n" +
	"@._|@@_|||_@@|"

var (
	// Tree stands its trunk over the anchor column
	Tree = MustLoad(KindTree, treeArt, 12)

	Snowman = MustLoad(KindSnowman, snowmanArt, 4)

	House = MustLoad(KindHouse, houseArt, -1)
)
