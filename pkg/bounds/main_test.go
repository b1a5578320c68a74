package bounds

import (
	"testing"

	"gitlab.com/navyx/nexus/clamp/pkg/internal/testhelper"
)

func TestMain(m *testing.M) {
	testhelper.WrapTestMain(m)
}
