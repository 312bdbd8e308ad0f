package journal

import (
	"encoding/json"
	"fmt"

	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// Encode serializes n. Lock state is not kept.
func Encode(n *npc.Npc) ([]byte, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", n.DisplayName(), err)
	}
	return body, nil
}

// Decode restores an NPC. Every present attribute comes back Unlocked.
func Decode(body []byte) (*npc.Npc, error) {
	var n npc.Npc
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, fmt.Errorf("decode npc: %w", err)
	}
	return &n, nil
}
