package memory_test

import (
	"testing"

	"github.com/aretw0/palintape/pkg/adapters/memory"
	"github.com/aretw0/palintape/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, memory.NewStore())
}
