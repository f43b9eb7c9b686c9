package rvsdg

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// nodeTerm is the structural key a pure node is hash-consed under:
// (region, kind, origins), exactly as spec.md §3 invariant 4 and §9
// describe. origins is encoded into a single string (via encodeOrigins)
// rather than kept as a slice so that nodeTerm itself stays comparable —
// Go map keys, and the == operator generally, require comparable types,
// and []OriginId is not one. The encoding is injective (each OriginId
// variant/node-or-region/index triple is written unambiguously), so string
// equality here is exactly origin-slice equality.
type nodeTerm[S Operation] struct {
	region  RegionId
	kind    NodeKind[S]
	origins string
}

// encodeOrigins renders an origin slice into the injective string form
// nodeTerm's equality and hashNodeTerm rely on.
func encodeOrigins(origins []OriginId) string {
	var b strings.Builder
	for _, o := range origins {
		if o.IsOut() {
			node, _ := o.NodeId()
			fmt.Fprintf(&b, "O:%d:%d;", node, o.Index())
		} else {
			fmt.Fprintf(&b, "A:%d:%d;", o.region, o.Index())
		}
	}
	return b.String()
}

// hashNodeTerm computes term's stable structural hash, fed through a
// single xxhash.Digest: the region id, a Go-syntax rendering of kind
// (stable within one process run, which is all a hash-cons table needs),
// then the encoded origins. This hash is computed exactly once per
// construction call and reused for both the lookup and, on a miss, the
// insert — mirroring the original Rust implementation's
// `raw_entry_mut().from_key_hashed_nocheck`, where recomputing the hash a
// second time would be wasted work, not a correctness concern (spec.md
// §9).
func hashNodeTerm[S Operation](term nodeTerm[S]) uint64 {
	h := xxhash.New()
	fmt.Fprintf(h, "%d|%#v|%s", term.region, term.kind, term.origins)
	return h.Sum64()
}

// internEntry is one bucket slot: the full key (for collision resolution
// by equality, not just hash equality) and the NodeId it resolved to.
type internEntry[S Operation] struct {
	term nodeTerm[S]
	id   NodeId
}

// internTable is the structural hash-cons table of spec.md §2/§4.4: a
// precomputed-hash bucket map, with full-key equality comparison inside
// each bucket to resolve collisions. Side-effectful nodes are never
// offered to this table (Context.mkNodeWith gates that before calling
// lookup/insert), which is what spec.md §2 invariant 5 requires.
type internTable[S Operation] struct {
	buckets map[uint64][]internEntry[S]
}

func newInternTable[S Operation]() *internTable[S] {
	return &internTable[S]{buckets: make(map[uint64][]internEntry[S])}
}

// lookup returns the NodeId previously interned under term (found via its
// precomputed hash), and whether it was found.
func (t *internTable[S]) lookup(term nodeTerm[S], hash uint64) (NodeId, bool) {
	for _, e := range t.buckets[hash] {
		if e.term == term {
			return e.id, true
		}
	}
	return 0, false
}

// insert records that term resolves to id, under its precomputed hash.
func (t *internTable[S]) insert(term nodeTerm[S], hash uint64, id NodeId) {
	t.buckets[hash] = append(t.buckets[hash], internEntry[S]{term: term, id: id})
}
