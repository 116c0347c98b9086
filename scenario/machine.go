// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/containers/deque"
	"github.com/ava-labs/containers/queue"
	"github.com/ava-labs/containers/stack"
	"github.com/ava-labs/containers/tree"
)

// None is the result of an operation that found no value.
const None = "<none>"

// A machine applies steps to a single container. Mutating operations return
// the container's resulting length.
type machine interface {
	apply(Step) (string, error)
}

func newMachine(k Kind) (machine, error) {
	switch k {
	case Stack:
		return new(stackMachine), nil
	case Queue:
		return new(queueMachine), nil
	case Priority:
		return new(priorityMachine), nil
	case Heap:
		return new(heapMachine), nil
	case Deque:
		return new(dequeMachine), nil
	case Tree:
		return new(treeMachine), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownContainer, k)
	}
}

// orNone returns a function that renders `(x, true)` with `format`, and any
// `(_, false)` as [None].
func orNone[T any](format func(T) string) func(T, bool) string {
	return func(x T, ok bool) string {
		if !ok {
			return None
		}
		return format(x)
	}
}

var (
	str      = orNone(func(s string) string { return s })
	workName = orNone(func(w queue.Work) string { return w.Name })
	index    = orNone(strconv.Itoa)
	nodeVal  = orNone(func(n *tree.Node[string]) string { return n.Value })
)

func unknownOp(k Kind, s Step) error {
	return fmt.Errorf("%w %q for %s", ErrUnknownOp, s.Op, k)
}

func requireValue(s Step) error {
	if s.Value == "" {
		return fmt.Errorf("%w for %q", ErrMissingValue, s.Op)
	}
	return nil
}

type stackMachine struct {
	s stack.Stack[string]
}

func (m *stackMachine) apply(s Step) (string, error) {
	switch s.Op {
	case "push":
		if err := requireValue(s); err != nil {
			return "", err
		}
		m.s.Push(s.Value)
		return strconv.Itoa(m.s.Len()), nil
	case "pop":
		return str(m.s.Pop()), nil
	case "peek":
		return str(m.s.Peek()), nil
	case "len":
		return strconv.Itoa(m.s.Len()), nil
	case "string":
		return m.s.String(), nil
	default:
		return "", unknownOp(Stack, s)
	}
}

type queueMachine struct {
	q queue.Queue[string]
}

func (m *queueMachine) apply(s Step) (string, error) {
	switch s.Op {
	case "append":
		if err := requireValue(s); err != nil {
			return "", err
		}
		m.q.Append(s.Value)
		return strconv.Itoa(m.q.Len()), nil
	case "dequeue":
		return str(m.q.Dequeue()), nil
	case "first":
		return str(m.q.First()), nil
	case "last":
		return str(m.q.Last()), nil
	case "len":
		return strconv.Itoa(m.q.Len()), nil
	default:
		return "", unknownOp(Queue, s)
	}
}

type priorityMachine struct {
	q queue.Queue[queue.Work]
}

func (m *priorityMachine) apply(s Step) (string, error) {
	switch s.Op {
	case "append":
		if err := requireValue(s); err != nil {
			return "", err
		}
		m.q.Append(queue.Work{Name: s.Value, Level: s.Priority})
		return strconv.Itoa(m.q.Len()), nil
	case "dequeue":
		return workName(queue.DequeueByPriority(&m.q)), nil
	case "first":
		return workName(m.q.First()), nil
	case "last":
		return workName(m.q.Last()), nil
	case "len":
		return strconv.Itoa(m.q.Len()), nil
	default:
		return "", unknownOp(Priority, s)
	}
}

// heapMachine is the logarithmic counterpart of [priorityMachine].
type heapMachine struct {
	p queue.Priority[queue.Work]
}

func (m *heapMachine) apply(s Step) (string, error) {
	switch s.Op {
	case "push":
		if err := requireValue(s); err != nil {
			return "", err
		}
		m.p.Push(queue.Work{Name: s.Value, Level: s.Priority})
		return strconv.Itoa(m.p.Len()), nil
	case "pop":
		return workName(m.p.Pop()), nil
	case "peek":
		return workName(m.p.Peek()), nil
	case "len":
		return strconv.Itoa(m.p.Len()), nil
	default:
		return "", unknownOp(Heap, s)
	}
}

type dequeMachine struct {
	d deque.Deque[string]
}

func (m *dequeMachine) apply(s Step) (string, error) {
	switch s.Op {
	case "prepend", "append", "contains", "index":
		if err := requireValue(s); err != nil {
			return "", err
		}
	}

	switch s.Op {
	case "prepend":
		m.d.Prepend(s.Value)
		return strconv.Itoa(m.d.Len()), nil
	case "append":
		m.d.Append(s.Value)
		return strconv.Itoa(m.d.Len()), nil
	case "dequeue_front":
		return str(m.d.DequeueFront()), nil
	case "dequeue_back":
		return str(m.d.DequeueBack()), nil
	case "first":
		return str(m.d.First()), nil
	case "last":
		return str(m.d.Last()), nil
	case "contains":
		return strconv.FormatBool(deque.Contains(&m.d, s.Value)), nil
	case "index":
		return index(deque.Index(&m.d, s.Value)), nil
	case "len":
		return strconv.Itoa(m.d.Len()), nil
	default:
		return "", unknownOp(Deque, s)
	}
}

type treeMachine struct {
	root *tree.Node[string]
}

func (m *treeMachine) count() int {
	if m.root == nil {
		return 0
	}
	return m.root.Count()
}

func (m *treeMachine) apply(s Step) (string, error) {
	switch s.Op {
	case "add":
		if err := requireValue(s); err != nil {
			return "", err
		}
		if m.root == nil {
			if s.Parent != "" {
				return "", fmt.Errorf("%w %q in empty tree", ErrUnknownParent, s.Parent)
			}
			m.root = tree.New(s.Value)
			return strconv.Itoa(m.count()), nil
		}

		parent := m.root
		if s.Parent != "" {
			p, ok := tree.Find(m.root, s.Parent)
			if !ok {
				return "", fmt.Errorf("%w %q", ErrUnknownParent, s.Parent)
			}
			parent = p
		}
		parent.Add(tree.New(s.Value))
		return strconv.Itoa(m.count()), nil

	case "find":
		if err := requireValue(s); err != nil {
			return "", err
		}
		if m.root == nil {
			return None, nil
		}
		return nodeVal(tree.Find(m.root, s.Value)), nil

	case "count", "len":
		return strconv.Itoa(m.count()), nil

	default:
		return "", unknownOp(Tree, s)
	}
}
