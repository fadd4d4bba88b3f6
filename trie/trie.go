package trie

import (
	"math"

	"github.com/dekarrin/sophtrie/internal/util"
)

// Root is the node ID every TriePath starts from.
const Root = 0

// NoNode marks the absence of a destination node in a JoinedTriePaths
// result, the nondeterministic-trie analogue of NoKey.
const NoNode = -1

// TriePath is a path through the trie: the node currently reached, and
// every transition taken to get there.
type TriePath struct {
	DstNodeID   int
	Transitions []TransitionKey
}

// NewTriePath builds a TriePath.
func NewTriePath(dstNodeID int, transitions []TransitionKey) TriePath {
	return TriePath{DstNodeID: dstNodeID, Transitions: transitions}
}

// RootTriePath is the path consisting of no transitions, sitting at Root.
func RootTriePath() TriePath {
	return TriePath{DstNodeID: Root}
}

// LookupResult is one candidate translation found by a lookup, with the
// cost accumulated along the path that produced it.
type LookupResult struct {
	TranslationID int
	Cost          float64
	Transitions   []TransitionKey
}

// NewLookupResult builds a LookupResult.
func NewLookupResult(translationID int, cost float64, transitions []TransitionKey) LookupResult {
	return LookupResult{TranslationID: translationID, Cost: cost, Transitions: transitions}
}

// TransitionSourceNode is a candidate starting point for a Link/LinkJoin
// build step, carrying the cost and flags that should apply to whatever
// transition leaves it.
type TransitionSourceNode struct {
	SrcNodeIndex            int
	OutgoingCost            float64
	OutgoingTransitionFlags []int
}

// NewTransitionSourceNode builds a TransitionSourceNode.
func NewTransitionSourceNode(srcNodeIndex int, outgoingCost float64, outgoingTransitionFlags []int) TransitionSourceNode {
	return TransitionSourceNode{
		SrcNodeIndex:            srcNodeIndex,
		OutgoingCost:            outgoingCost,
		OutgoingTransitionFlags: outgoingTransitionFlags,
	}
}

// RootTransitionSourceNode is the zero-cost, unflagged source node at Root.
func RootTransitionSourceNode() TransitionSourceNode {
	return TransitionSourceNode{SrcNodeIndex: Root}
}

// IncrementCosts returns a copy of srcs with costChange added to each
// node's OutgoingCost.
func IncrementCosts(srcs []TransitionSourceNode, costChange float64) []TransitionSourceNode {
	out := make([]TransitionSourceNode, len(srcs))
	for i, src := range srcs {
		out[i] = src
		out[i].OutgoingCost = src.OutgoingCost + costChange
	}
	return out
}

// AddFlags returns a copy of srcs with flags appended to each node's
// OutgoingTransitionFlags.
func AddFlags(srcs []TransitionSourceNode, flags []int) []TransitionSourceNode {
	out := make([]TransitionSourceNode, len(srcs))
	for i, src := range srcs {
		newFlags := make([]int, len(src.OutgoingTransitionFlags), len(src.OutgoingTransitionFlags)+len(flags))
		copy(newFlags, src.OutgoingTransitionFlags)
		newFlags = append(newFlags, flags...)
		out[i] = src
		out[i].OutgoingTransitionFlags = newFlags
	}
	return out
}

// JoinedTransitionSeq is the sequence of transitions one source node took
// to reach a LinkJoin/LinkJoinChain destination.
type JoinedTransitionSeq struct {
	Transitions []TransitionKey
}

// JoinedTriePaths is the result of a LinkJoin/LinkJoinChain call: the
// shared destination node (NoNode if nothing was joined) and the
// transition sequence contributed by each source.
type JoinedTriePaths struct {
	DstNodeID      int
	TransitionSeqs []JoinedTransitionSeq
}

// ReverseNodeEntry is one source of a transition into a destination node,
// as recorded by ReversedNodes.
type ReverseNodeEntry struct {
	SrcNodeID       int
	TransitionIndex int
}

// ReverseNodes maps a destination node to, per key, the sources that can
// reach it on that key.
type ReverseNodes map[int]map[int][]ReverseNodeEntry

// ReverseTranslations maps a translation ID to the nodes it was set on.
type ReverseTranslations map[int][]int

// SubtrieKeyInfo is one key used along a SubtrieTransition, with its
// per-translation cost.
type SubtrieKeyInfo struct {
	KeyID           int
	TransitionIndex int
	Cost            float64
}

// SubtrieTransition is one edge of a subtrie extracted for a single
// translation.
type SubtrieTransition struct {
	SrcNodeID int
	DstNodeID int
	KeyInfos  []SubtrieKeyInfo
}

// SubtrieData is the full subtrie reachable backward from a translation's
// nodes: every node involved (in topological order, sources before
// destinations), every transition between them, and the translation's own
// terminal nodes.
type SubtrieData struct {
	Nodes            []int
	Transitions      []SubtrieTransition
	TranslationNodes []int
}

// NondeterministicTrie is a trie that can be in multiple states at once:
// the same keysymbol chain may be shared by several translations, and a
// lookup walks every transition consistent with the input rather than
// committing to one. Node 0 is always Root.
type NondeterministicTrie struct {
	transitions            []map[int][]int
	nodeTranslations       map[int][]int
	transitionCosts        map[TransitionCostKey]float64
	usedNodesByTranslation map[int]map[int]bool
}

// New creates an empty trie containing only Root.
func New() *NondeterministicTrie {
	return &NondeterministicTrie{
		transitions:            []map[int][]int{make(map[int][]int)},
		nodeTranslations:       make(map[int][]int),
		transitionCosts:        make(map[TransitionCostKey]float64),
		usedNodesByTranslation: make(map[int]map[int]bool),
	}
}

func (t *NondeterministicTrie) createNewNode() int {
	id := len(t.transitions)
	t.transitions = append(t.transitions, make(map[int][]int))
	return id
}

func (t *NondeterministicTrie) usedNodes(translationID int) map[int]bool {
	used, ok := t.usedNodesByTranslation[translationID]
	if !ok {
		used = make(map[int]bool)
		t.usedNodesByTranslation[translationID] = used
	}
	return used
}

func (t *NondeterministicTrie) assignTransitionCost(srcNodeID, keyID, transitionIndex int, costInfo TransitionCostInfo) {
	key := NewTransitionCostKey(NewTransitionKey(srcNodeID, keyID, transitionIndex), costInfo.TranslationID)
	existing, ok := t.transitionCosts[key]
	if !ok {
		existing = math.Inf(1)
	}
	t.transitionCosts[key] = math.Min(costInfo.Cost, existing)
}

// Follow gets the destination reached from srcNodeID on keyID, reusing an
// existing, not-yet-used-by-this-translation transition if one exists, or
// creating a new node and transition otherwise.
func (t *NondeterministicTrie) Follow(srcNodeID, keyID int, costInfo TransitionCostInfo) TriePath {
	used := t.usedNodes(costInfo.TranslationID)

	if dstNodeIDs, ok := t.transitions[srcNodeID][keyID]; ok {
		for transitionIndex, dstNodeID := range dstNodeIDs {
			if used[dstNodeID] {
				continue
			}
			used[dstNodeID] = true
			t.assignTransitionCost(srcNodeID, keyID, transitionIndex, costInfo)
			return NewTriePath(dstNodeID, []TransitionKey{NewTransitionKey(srcNodeID, keyID, transitionIndex)})
		}
	}

	newNodeID := t.createNewNode()
	used[newNodeID] = true

	newTransitionIndex := len(t.transitions[srcNodeID][keyID])
	t.transitions[srcNodeID][keyID] = append(t.transitions[srcNodeID][keyID], newNodeID)
	t.assignTransitionCost(srcNodeID, keyID, newTransitionIndex, costInfo)

	return NewTriePath(newNodeID, []TransitionKey{NewTransitionKey(srcNodeID, keyID, newTransitionIndex)})
}

// FollowChain follows a chain of keys from srcNodeID, assigning the full
// cost to the last transition and zero cost to every intermediate one.
func (t *NondeterministicTrie) FollowChain(srcNodeID int, keyIDs []int, costInfo TransitionCostInfo) TriePath {
	current := srcNodeID
	var allTransitions []TransitionKey

	for i, keyID := range keyIDs {
		var addend TriePath
		if i == len(keyIDs)-1 {
			addend = t.Follow(current, keyID, costInfo)
		} else {
			addend = t.Follow(current, keyID, NewTransitionCostInfo(0, costInfo.TranslationID))
		}
		current = addend.DstNodeID
		allTransitions = append(allTransitions, addend.Transitions...)
	}

	return NewTriePath(current, allTransitions)
}

// Link creates (or reuses) a transition from srcNodeID to an existing
// dstNodeID on keyID.
func (t *NondeterministicTrie) Link(srcNodeID, dstNodeID, keyID int, costInfo TransitionCostInfo) TransitionKey {
	dstDict := t.transitions[srcNodeID]

	var transitionIndex int
	if dstNodeIDs, ok := dstDict[keyID]; ok {
		if idx := indexOfInt(dstNodeIDs, dstNodeID); idx >= 0 {
			transitionIndex = idx
		} else {
			transitionIndex = len(dstNodeIDs)
			dstDict[keyID] = append(dstNodeIDs, dstNodeID)
		}
	} else {
		dstDict[keyID] = []int{dstNodeID}
		transitionIndex = 0
	}

	t.assignTransitionCost(srcNodeID, keyID, transitionIndex, costInfo)
	t.usedNodes(costInfo.TranslationID)[dstNodeID] = true

	return NewTransitionKey(srcNodeID, keyID, transitionIndex)
}

// LinkChain follows all but the last of keyIDs, then links the final hop
// to dstNodeID.
func (t *NondeterministicTrie) LinkChain(srcNodeID, dstNodeID int, keyIDs []int, costInfo TransitionCostInfo) []TransitionKey {
	if len(keyIDs) == 0 {
		return nil
	}

	path := t.FollowChain(srcNodeID, keyIDs[:len(keyIDs)-1], NewTransitionCostInfo(0, costInfo.TranslationID))
	transition := t.Link(path.DstNodeID, dstNodeID, keyIDs[len(keyIDs)-1], costInfo)

	return append(path.Transitions, transition)
}

// LinkJoin links every source node to a single common destination on one
// key each, creating the destination from the first source if dstNodeID
// is NoNode.
func (t *NondeterministicTrie) LinkJoin(srcNodes []TransitionSourceNode, dstNodeID int, keyIDs []int, translationID int) JoinedTriePaths {
	chains := make([][]int, len(keyIDs))
	for i, k := range keyIDs {
		chains[i] = []int{k}
	}
	return t.LinkJoinChain(srcNodes, dstNodeID, chains, translationID)
}

// LinkJoinChain is LinkJoin generalized to a chain of keys per source.
func (t *NondeterministicTrie) LinkJoinChain(srcNodes []TransitionSourceNode, dstNodeID int, keyIDChains [][]int, translationID int) JoinedTriePaths {
	if len(srcNodes) == 0 || len(keyIDChains) == 0 {
		return JoinedTriePaths{DstNodeID: NoNode}
	}

	type pair struct {
		src  TransitionSourceNode
		keys []int
	}
	var pairs []pair
	for _, src := range srcNodes {
		for _, keys := range keyIDChains {
			pairs = append(pairs, pair{src: src, keys: keys})
		}
	}
	if len(pairs) == 0 {
		return JoinedTriePaths{DstNodeID: NoNode}
	}

	var seqs []JoinedTransitionSeq

	if dstNodeID == NoNode {
		first := pairs[0]
		firstCost := NewTransitionCostInfo(first.src.OutgoingCost, translationID)
		firstPath := t.FollowChain(first.src.SrcNodeIndex, first.keys, firstCost)
		seqs = append(seqs, JoinedTransitionSeq{Transitions: firstPath.Transitions})

		for _, p := range pairs[1:] {
			cost := NewTransitionCostInfo(p.src.OutgoingCost, translationID)
			transitions := t.LinkChain(p.src.SrcNodeIndex, firstPath.DstNodeID, p.keys, cost)
			seqs = append(seqs, JoinedTransitionSeq{Transitions: transitions})
		}

		return JoinedTriePaths{DstNodeID: firstPath.DstNodeID, TransitionSeqs: seqs}
	}

	for _, p := range pairs {
		cost := NewTransitionCostInfo(p.src.OutgoingCost, translationID)
		transitions := t.LinkChain(p.src.SrcNodeIndex, dstNodeID, p.keys, cost)
		seqs = append(seqs, JoinedTransitionSeq{Transitions: transitions})
	}

	return JoinedTriePaths{DstNodeID: dstNodeID, TransitionSeqs: seqs}
}

// SetTranslation records that translationID terminates at nodeID.
func (t *NondeterministicTrie) SetTranslation(nodeID, translationID int) {
	t.nodeTranslations[nodeID] = append(t.nodeTranslations[nodeID], translationID)
}

type emptyTransitionFrame struct {
	path    TriePath
	visited map[TransitionKey]bool
}

// dfsEmptyTransitions expands srcNodePath along every reachable chain of
// no-key (epsilon) transitions, guarding against cycles by tracking which
// individual transitions have already been taken on the current branch
// (not which nodes have been visited — the same node may legitimately be
// revisited via a different epsilon edge).
func (t *NondeterministicTrie) dfsEmptyTransitions(srcNodePath TriePath) []TriePath {
	var results []TriePath

	var stack util.Stack[emptyTransitionFrame]
	stack.Push(emptyTransitionFrame{path: srcNodePath, visited: map[TransitionKey]bool{}})

	for !stack.Empty() {
		frame := stack.Pop()
		results = append(results, frame.path)

		dstNodeIDs, ok := t.transitions[frame.path.DstNodeID][NoKey]
		if !ok {
			continue
		}

		for transitionIndex, dstNodeID := range dstNodeIDs {
			key := NewTransitionKey(frame.path.DstNodeID, NoKey, transitionIndex)
			if frame.visited[key] {
				continue
			}

			newVisited := make(map[TransitionKey]bool, len(frame.visited)+1)
			for k := range frame.visited {
				newVisited[k] = true
			}
			newVisited[key] = true

			newTransitions := make([]TransitionKey, len(frame.path.Transitions), len(frame.path.Transitions)+1)
			copy(newTransitions, frame.path.Transitions)
			newTransitions = append(newTransitions, key)

			stack.Push(emptyTransitionFrame{path: NewTriePath(dstNodeID, newTransitions), visited: newVisited})
		}
	}

	return results
}

// Traverse advances every path in srcNodePaths by one keyID, expanding
// each result along any epsilon transitions that follow.
func (t *NondeterministicTrie) Traverse(srcNodePaths []TriePath, keyID int) []TriePath {
	var results []TriePath

	for _, path := range srcNodePaths {
		dstNodeIDs, ok := t.transitions[path.DstNodeID][keyID]
		if !ok {
			continue
		}
		for transitionIndex, dstNodeID := range dstNodeIDs {
			transitionKey := NewTransitionKey(path.DstNodeID, keyID, transitionIndex)
			newTransitions := make([]TransitionKey, len(path.Transitions), len(path.Transitions)+1)
			copy(newTransitions, path.Transitions)
			newTransitions = append(newTransitions, transitionKey)

			results = append(results, t.dfsEmptyTransitions(NewTriePath(dstNodeID, newTransitions))...)
		}
	}

	return results
}

// TraverseChain is Traverse applied successively for each key in keyIDs.
func (t *NondeterministicTrie) TraverseChain(srcNodePaths []TriePath, keyIDs []int) []TriePath {
	current := srcNodePaths
	for _, keyID := range keyIDs {
		current = t.Traverse(current, keyID)
	}
	return current
}

// GetTranslationsAndCostsSingle returns every translation set at nodeID
// whose full cost can be computed along transitions (i.e. every
// transition in the path carries a cost for that translation), paired
// with that summed cost.
func (t *NondeterministicTrie) GetTranslationsAndCostsSingle(nodeID int, transitions []TransitionKey) []LookupResult {
	translationIDs, ok := t.nodeTranslations[nodeID]
	if !ok {
		return nil
	}

	var results []LookupResult
	for _, translationID := range translationIDs {
		var cumsumCost float64
		valid := true

		for _, transition := range transitions {
			key := NewTransitionCostKey(transition, translationID)
			cost, ok := t.transitionCosts[key]
			if !ok {
				valid = false
				break
			}
			cumsumCost += cost
		}

		if valid {
			results = append(results, NewLookupResult(translationID, cumsumCost, transitions))
		}
	}

	return results
}

// GetTranslationsAndCosts expands GetTranslationsAndCostsSingle over
// every path in nodePaths.
func (t *NondeterministicTrie) GetTranslationsAndCosts(nodePaths []TriePath) []LookupResult {
	var results []LookupResult
	for _, path := range nodePaths {
		results = append(results, t.GetTranslationsAndCostsSingle(path.DstNodeID, path.Transitions)...)
	}
	return results
}

// GetTransitionCost returns the cost assigned to transition for
// translationID, if any.
func (t *NondeterministicTrie) GetTransitionCost(transition TransitionKey, translationID int) (float64, bool) {
	cost, ok := t.transitionCosts[NewTransitionCostKey(transition, translationID)]
	return cost, ok
}

// TransitionHasKey reports whether transition was taken on keyID.
func (t *NondeterministicTrie) TransitionHasKey(transition TransitionKey, keyID int) bool {
	return transition.KeyID == keyID
}

// GetTranslationsAndMinCosts is GetTranslationsAndCosts, deduplicated to
// the single cheapest result per translation ID.
func (t *NondeterministicTrie) GetTranslationsAndMinCosts(nodePaths []TriePath) []LookupResult {
	minCostResults := make(map[int]LookupResult)

	for _, path := range nodePaths {
		for _, result := range t.GetTranslationsAndCostsSingle(path.DstNodeID, path.Transitions) {
			existing, ok := minCostResults[result.TranslationID]
			if !ok || result.Cost < existing.Cost {
				minCostResults[result.TranslationID] = result
			}
		}
	}

	results := make([]LookupResult, 0, len(minCostResults))
	for _, result := range minCostResults {
		results = append(results, result)
	}
	return results
}

// GetNodeTranslations returns the translation IDs set at nodeID.
func (t *NondeterministicTrie) GetNodeTranslations(nodeID int) ([]int, bool) {
	ids, ok := t.nodeTranslations[nodeID]
	return ids, ok
}

// GetTransitionsFromNode returns the key-to-destinations map for nodeID.
func (t *NondeterministicTrie) GetTransitionsFromNode(nodeID int) (map[int][]int, bool) {
	if nodeID < 0 || nodeID >= len(t.transitions) {
		return nil, false
	}
	return t.transitions[nodeID], true
}

// NNodes returns the number of nodes in the trie (including Root).
func (t *NondeterministicTrie) NNodes() int {
	return len(t.transitions)
}

// GetAllTranslationIDs returns every translation ID set anywhere in the
// trie, in no particular order.
func (t *NondeterministicTrie) GetAllTranslationIDs() []int {
	seen := make(map[int]bool)
	for _, ids := range t.nodeTranslations {
		for _, id := range ids {
			seen[id] = true
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

// ReversedNodes builds, for every node, the set of (key, source) pairs
// that can reach it directly.
func (t *NondeterministicTrie) ReversedNodes() ReverseNodes {
	reverseNodes := make(ReverseNodes)

	for srcNodeID, transitions := range t.transitions {
		for keyID, dstNodeIDs := range transitions {
			for transitionIndex, dstNodeID := range dstNodeIDs {
				byKey, ok := reverseNodes[dstNodeID]
				if !ok {
					byKey = make(map[int][]ReverseNodeEntry)
					reverseNodes[dstNodeID] = byKey
				}
				byKey[keyID] = append(byKey[keyID], ReverseNodeEntry{SrcNodeID: srcNodeID, TransitionIndex: transitionIndex})
			}
		}
	}

	return reverseNodes
}

// ReversedTranslations builds the inverse of nodeTranslations: every node
// a translation was set on, keyed by translation ID.
func (t *NondeterministicTrie) ReversedTranslations() ReverseTranslations {
	reverseTranslations := make(ReverseTranslations)
	for nodeID, translationIDs := range t.nodeTranslations {
		for _, translationID := range translationIDs {
			reverseTranslations[translationID] = append(reverseTranslations[translationID], nodeID)
		}
	}
	return reverseTranslations
}

// GetReverseLookupResults finds every path from Root that reaches
// translationID, given precomputed reverse indexes.
func (t *NondeterministicTrie) GetReverseLookupResults(reverseNodes ReverseNodes, reverseTranslations ReverseTranslations, translationID int) []LookupResult {
	var results []LookupResult

	for _, node := range reverseTranslations[translationID] {
		visitedNodes := map[int]bool{node: true}
		t.dfsReverseLookup(node, translationID, nil, 0, visitedNodes, reverseNodes, &results)
	}

	return results
}

func (t *NondeterministicTrie) dfsReverseLookup(
	node, translationID int,
	transitionsReversed []TransitionKey,
	cost float64,
	visitedNodes map[int]bool,
	reverseNodes ReverseNodes,
	results *[]LookupResult,
) {
	if node == Root {
		final := make([]TransitionKey, len(transitionsReversed))
		for i, tk := range transitionsReversed {
			final[len(final)-1-i] = tk
		}
		*results = append(*results, NewLookupResult(translationID, cost, final))
		return
	}

	srcNodesByKey, ok := reverseNodes[node]
	if !ok {
		return
	}

	for keyID, srcNodes := range srcNodesByKey {
		for _, entry := range srcNodes {
			if visitedNodes[entry.SrcNodeID] {
				continue
			}
			if !t.TransitionHasCostForTranslation(entry.SrcNodeID, keyID, entry.TransitionIndex, translationID) {
				continue
			}

			transitionKey := NewTransitionKey(entry.SrcNodeID, keyID, entry.TransitionIndex)
			transitionCost, _ := t.GetTransitionCost(transitionKey, translationID)

			visitedNodes[entry.SrcNodeID] = true
			t.dfsReverseLookup(
				entry.SrcNodeID,
				translationID,
				append(transitionsReversed, transitionKey),
				cost+transitionCost,
				visitedNodes,
				reverseNodes,
				results,
			)
			delete(visitedNodes, entry.SrcNodeID)
		}
	}
}

// GetSubtrieData extracts every node and transition feeding into
// translationID, in topological order (sources before the destinations
// they feed), or ok=false if translationID is unknown.
func (t *NondeterministicTrie) GetSubtrieData(reverseNodes ReverseNodes, reverseTranslations ReverseTranslations, translationID int) (SubtrieData, bool) {
	translationNodes, ok := reverseTranslations[translationID]
	if !ok {
		return SubtrieData{}, false
	}

	visitedNodes := make(map[int]bool)
	var nodesToposort []int
	visitedTransitions := make(map[subtrieEdgeKey][]SubtrieKeyInfo)

	for _, node := range translationNodes {
		t.dfsSubtrie(node, translationID, visitedNodes, reverseNodes, visitedTransitions, &nodesToposort)
	}

	var transitions []SubtrieTransition
	for edge, keyInfos := range visitedTransitions {
		transitions = append(transitions, SubtrieTransition{
			SrcNodeID: edge.Src,
			DstNodeID: edge.Dst,
			KeyInfos:  keyInfos,
		})
	}

	return SubtrieData{
		Nodes:            nodesToposort,
		Transitions:      transitions,
		TranslationNodes: translationNodes,
	}, true
}

// subtrieEdgeKey identifies a (source, destination) node pair visited
// while extracting a subtrie.
type subtrieEdgeKey struct {
	Src int
	Dst int
}

func (t *NondeterministicTrie) dfsSubtrie(
	node, translationID int,
	visitedNodes map[int]bool,
	reverseNodes ReverseNodes,
	visitedTransitions map[subtrieEdgeKey][]SubtrieKeyInfo,
	nodesToposort *[]int,
) {
	if visitedNodes[node] {
		return
	}
	visitedNodes[node] = true

	if srcNodesByKey, ok := reverseNodes[node]; ok {
		for keyID, srcNodes := range srcNodesByKey {
			for _, entry := range srcNodes {
				if !t.TransitionHasCostForTranslation(entry.SrcNodeID, keyID, entry.TransitionIndex, translationID) {
					continue
				}

				t.dfsSubtrie(entry.SrcNodeID, translationID, visitedNodes, reverseNodes, visitedTransitions, nodesToposort)

				cost, _ := t.GetTransitionCost(NewTransitionKey(entry.SrcNodeID, keyID, entry.TransitionIndex), translationID)
				edge := subtrieEdgeKey{Src: entry.SrcNodeID, Dst: node}
				visitedTransitions[edge] = append(visitedTransitions[edge], SubtrieKeyInfo{
					KeyID:           keyID,
					TransitionIndex: entry.TransitionIndex,
					Cost:            cost,
				})
			}
		}
	}

	*nodesToposort = append(*nodesToposort, node)
}

// TransitionHasCostForTranslation reports whether the given transition
// carries a recorded cost for translationID.
func (t *NondeterministicTrie) TransitionHasCostForTranslation(srcNodeID, keyID, transitionIndex, translationID int) bool {
	_, ok := t.transitionCosts[NewTransitionCostKey(NewTransitionKey(srcNodeID, keyID, transitionIndex), translationID)]
	return ok
}

func indexOfInt(haystack []int, needle int) int {
	for i, v := range haystack {
		if v == needle {
			return i
		}
	}
	return -1
}
