// Package avl implements AVL tree insertion as a step producer.
//
// Each inserted value descends from the root emitting one Compare per node
// passed, is attached as a new leaf with an Assign event, and then the
// ancestors are rebalanced bottom-up. Every single rotation is one Rotate
// event carrying the subtree root before and after it; the LR and RL cases
// are two rotations and therefore two events, both tagged with the case.
// Values already present are skipped without events.
//
// Heights count nodes, so a leaf has height 1 and an empty subtree 0.
// Balance is height(left) - height(right).
package avl
