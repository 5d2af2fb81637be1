// Package linear provides bounded Stack and Queue containers and a scripted
// step producer that runs a list of operations against one of them.
//
// Every accepted operation emits exactly one event: Assign for push and
// enqueue, Move for pop and dequeue, Select for peek. Overflow and underflow
// are refused: the container is left unchanged, no event is emitted and the
// refusal is counted in Script.Rejected.
package linear
