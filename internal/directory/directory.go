// Package directory implements the ordered player directory: a
// height-balanced binary search tree keyed by player id. Balancing keeps
// lookups logarithmic under any insertion order; an unbalanced tree would
// degrade to linear scans when ids arrive sequentially.
package directory

import (
	"strings"

	"github.com/shoockrates/casinosim/internal/model"
)

// Directory holds all players ordered by id
type Directory struct {
	root *node
	size int
}

type node struct {
	player *model.Player
	left   *node
	right  *node
	height int
}

// New creates an empty directory
func New() *Directory {
	return &Directory{}
}

// Len returns the number of players held
func (d *Directory) Len() int {
	return d.size
}

// Insert places a player as a new entry, keeping the tree ordered and
// balanced. Fails with ErrDuplicateID if the id is already present;
// the directory is unchanged on failure.
func (d *Directory) Insert(p *model.Player) error {
	root, err := insert(d.root, p)
	if err != nil {
		return err
	}
	d.root = root
	d.size++
	return nil
}

// Remove deletes the player with the given id using in-order successor
// replacement. Fails with ErrNotFound if absent; unchanged on failure.
func (d *Directory) Remove(id model.PlayerID) error {
	root, err := remove(d.root, id)
	if err != nil {
		return err
	}
	d.root = root
	d.size--
	return nil
}

// FindByID returns the player with the given id, or ErrNotFound
func (d *Directory) FindByID(id model.PlayerID) (*model.Player, error) {
	n := d.root
	for n != nil {
		switch {
		case id < n.player.ID:
			n = n.left
		case id > n.player.ID:
			n = n.right
		default:
			return n.player, nil
		}
	}
	return nil, model.ErrNotFound
}

// FindByName returns all players whose name matches exactly,
// case-sensitive. The tree is ordered by id, so this is a full traversal.
func (d *Directory) FindByName(name string) []*model.Player {
	var matches []*model.Player
	d.root.walk(func(p *model.Player) {
		if p.Name == name {
			matches = append(matches, p)
		}
	})
	return matches
}

// FindByNamePartial returns all players whose name contains the substring
// under case-insensitive comparison, in ascending id order.
func (d *Directory) FindByNamePartial(substr string) []*model.Player {
	needle := strings.ToLower(substr)
	var matches []*model.Player
	d.root.walk(func(p *model.Player) {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	})
	return matches
}

// InOrder returns all players in ascending id order
func (d *Directory) InOrder() []*model.Player {
	players := make([]*model.Player, 0, d.size)
	d.root.walk(func(p *model.Player) {
		players = append(players, p)
	})
	return players
}

// walk visits the subtree in order
func (n *node) walk(visit func(*model.Player)) {
	if n == nil {
		return
	}
	n.left.walk(visit)
	visit(n.player)
	n.right.walk(visit)
}

func insert(n *node, p *model.Player) (*node, error) {
	if n == nil {
		return &node{player: p, height: 1}, nil
	}
	switch {
	case p.ID < n.player.ID:
		left, err := insert(n.left, p)
		if err != nil {
			return nil, err
		}
		n.left = left
	case p.ID > n.player.ID:
		right, err := insert(n.right, p)
		if err != nil {
			return nil, err
		}
		n.right = right
	default:
		return nil, model.ErrDuplicateID
	}
	return rebalance(n), nil
}

func remove(n *node, id model.PlayerID) (*node, error) {
	if n == nil {
		return nil, model.ErrNotFound
	}
	switch {
	case id < n.player.ID:
		left, err := remove(n.left, id)
		if err != nil {
			return nil, err
		}
		n.left = left
	case id > n.player.ID:
		right, err := remove(n.right, id)
		if err != nil {
			return nil, err
		}
		n.right = right
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		// Two children: promote the in-order successor
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.player = succ.player
		right, err := remove(n.right, succ.player.ID)
		if err != nil {
			return nil, err
		}
		n.right = right
	}
	return rebalance(n), nil
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *node) int {
	return height(n.left) - height(n.right)
}

func fixHeight(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	fixHeight(n)
	fixHeight(l)
	return l
}

func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	fixHeight(n)
	fixHeight(r)
	return r
}

func rebalance(n *node) *node {
	fixHeight(n)
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}
