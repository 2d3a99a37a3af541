package registry

import (
	"github.com/gogpu/ggfx/filter/builtin"
	"github.com/gogpu/ggfx/kernel"
)

var blendNames = func() map[string]bool {
	m := make(map[string]bool)
	for _, mode := range kernel.BlendModes() {
		m[builtin.BlendName(mode)] = true
	}
	return m
}()

func isBlend(name string) bool { return blendNames[name] }
