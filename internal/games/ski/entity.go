package ski

import (
	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// AssetProvider resolves an asset identifier to a loaded sprite.
// *assets.Library satisfies it.
type AssetProvider interface {
	Asset(name string) assets.Asset
}

// Entity is anything placed in the world that can be drawn and collided with.
type Entity interface {
	Position() core.Vec
	AssetName() string
	Bounds(ext core.Extent) core.Rect
	Render(dst *core.Screen, provider AssetProvider)
}

// renderEntity draws an entity's current asset centered on its position.
func renderEntity(dst *core.Screen, provider AssetProvider, e Entity) {
	a := provider.Asset(e.AssetName())
	pos := e.Position()
	w, h := a.Extent.Width, a.Extent.Height
	dst.DrawImage(a.Sprite, pos.X-w/2, pos.Y-h/2, w, h)
}

// entityBounds returns an entity's hit box for its current asset.
func entityBounds(provider AssetProvider, e Entity) core.Rect {
	return e.Bounds(provider.Asset(e.AssetName()).Extent)
}
