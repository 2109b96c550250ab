package catalog

// DocTopic is one topic guide.
type DocTopic struct {
	Topic string `yaml:"topic"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

var docTopics = []DocTopic{
	{
		Topic: "getting-started",
		Title: "Getting Started",
		Body: `
Install the package and its stylesheet:

    npm install @xyflow/react

Import the component and the bundled CSS, give the wrapper element an
explicit width and height, and render your nodes and edges:

    import { ReactFlow } from '@xyflow/react';
    import '@xyflow/react/dist/style.css';

React Flow is a controlled component: you own the nodes and edges arrays
and apply change events back onto them. The useNodesState and
useEdgesState hooks wire this up for you. Start from the basic-flow
example to see the full skeleton.

Key first steps:
- Wrap your app in ReactFlowProvider if you need hooks outside ReactFlow.
- Register custom node and edge types through nodeTypes and edgeTypes.
- Add Background, Controls, and MiniMap for the standard canvas feel.`,
	},
	{
		Topic: "core-concepts",
		Title: "Core Concepts",
		Body: `
Nodes and edges are plain objects. A node needs an id, a position, and a
data object; an edge needs an id, a source node id, and a target node id.
Everything else is optional.

Controlled vs uncontrolled: with nodes/edges props you control all state
and must handle onNodesChange/onEdgesChange; with defaultNodes and
defaultEdges React Flow manages state internally.

Change events: interactions emit NodeChange and EdgeChange objects, which
are discriminated unions (position, dimensions, select, remove, add,
replace). The applyNodeChanges and applyEdgeChanges helpers reduce a
batch of changes onto your arrays.

Handles: edges attach to Handle components inside nodes. Handles have a
type (source or target) and a position, and may carry an id when a node
has several.

The viewport: the canvas is an infinite plane. The viewport { x, y, zoom }
maps flow coordinates to screen pixels; use screenToFlowPosition when
converting pointer events to node positions.`,
	},
	{
		Topic: "layouting",
		Title: "Layouting",
		Body: `
React Flow does not lay nodes out for you; it renders the positions you
give it. For automatic arrangements, pair it with a layouting library and
write the computed positions back onto your nodes:

- dagre: simple tree/DAG layouts, small api. See the auto-layout example.
- elkjs: more powerful and configurable, heavier.
- d3-force: physics-based layouts for organic arrangements.
- d3-hierarchy: classic tidy trees for strict hierarchies.

Wait for useNodesInitialized before measuring-based layouts, since node
dimensions are only known after the first render. Re-run the layout when
the graph structure changes, not on every render.`,
	},
	{
		Topic: "theming",
		Title: "Theming",
		Body: `
The bundled stylesheet exposes CSS variables for every built-in color,
so most theming is overriding variables such as --xy-node-background-color
and --xy-edge-stroke on the .react-flow container.

Options, roughly in order of effort:
- Override CSS variables globally or per-flow via the style prop.
- Pass colorMode="dark" (or "light" / "system") for the built-in dark theme.
- Style nodes per-instance through node.style or node.className.
- Replace the stylesheet entirely and import only base.css, keeping the
  structural rules and supplying all visuals yourself.

Tailwind works well for custom nodes: they are ordinary React components,
so utility classes apply as usual.`,
	},
	{
		Topic: "performance",
		Title: "Performance",
		Body: `
The common cause of slow flows is collateral re-rendering: every node
re-rendering because one piece of state changed.

- Memoize custom node components and define nodeTypes/edgeTypes outside
  the component (or useMemo them); a new object identity forces a remount.
- Prefer useNodesData or a useStore selector over useNodes inside nodes;
  useNodes re-renders on every drag tick.
- Keep node data shallow and stable; spread-copying large arrays in
  onNodesChange on every frame is where big flows stall.
- Hide offscreen detail with onlyRenderVisibleElements for very large
  graphs, and simplify custom nodes below a zoom threshold.
- Collapse expensive subtrees: fewer rendered nodes beats faster nodes.`,
	},
	{
		Topic: "state-management",
		Title: "State Management",
		Body: `
React Flow keeps its internal state in a zustand store. For application
state there are three common setups:

- Local component state via useNodesState/useEdgesState: right for small
  flows and demos.
- Your own store (zustand, redux, jotai): keep nodes and edges there, and
  pass them with handlers into ReactFlow. This is the recommended shape
  once node data is edited from outside the canvas.
- Mixed: derived/ephemeral state through useStore selectors against the
  internal store, domain state in your own.

Inside custom nodes, update data through your store action rather than
mutating the node object; node objects must be replaced, not mutated,
for changes to be picked up.`,
	},
	{
		Topic: "migration",
		Title: "Migrating from reactflow 11 to @xyflow/react 12",
		Body: `
The package moved from 'reactflow' to '@xyflow/react', and imports become
named: import { ReactFlow } from '@xyflow/react' (no default export).

Breaking renames to watch for:
- parentNode on nodes is now parentId.
- project() is replaced by screenToFlowPosition (no scroll offset math).
- Edge updates: onEdgeUpdate family is now onReconnect, updateEdge is
  reconnectEdge.
- Node measurements live on node.measured.width/height; the old width and
  height fields are now user-settable inputs instead of outputs.
- useNodesState/useEdgesState generics now take the full node type, not
  just the data shape.

v12 also brings SSR support, computing flows on the server, and dark mode
via colorMode. Run the codemod or migrate incrementally; both packages can
coexist during the transition.`,
	},
	{
		Topic: "troubleshooting",
		Title: "Troubleshooting",
		Body: `
The flow renders nothing: the parent container must have an explicit
width and height; a 0-height container is the most reported issue.

"It looks like you have created a new nodeTypes or edgeTypes object":
define those maps outside the component or memoize them; a fresh object
per render remounts every node.

Nodes jump back after dragging: in controlled mode you must apply
position changes in onNodesChange (applyNodeChanges) or the controlled
props overwrite the drag.

Edges not connecting: handles must be present and connectable, source
must be type 'source' and target type 'target', and handle ids must match
sourceHandle/targetHandle when set.

Hooks throw about missing provider: wrap the tree in ReactFlowProvider
when calling useReactFlow and friends outside the ReactFlow component.

Inputs inside nodes do not receive focus or drags: add the nodrag class
to interactive elements so React Flow does not treat them as drag handles.`,
	},
}
