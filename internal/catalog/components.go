package catalog

// ComponentDoc holds reference documentation for one React Flow component.
type ComponentDoc struct {
	Name        string
	Category    string
	Description string
	Props       []PropDoc
	Usage       string
}

// PropDoc describes a single component prop.
type PropDoc struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

// Component categories.
const (
	CategoryCore     = "core"
	CategoryUI       = "ui"
	CategoryNodes    = "nodes"
	CategoryEdges    = "edges"
	CategoryViewport = "viewport"
)

var componentDocs = []ComponentDoc{
	{
		Name:     "ReactFlow",
		Category: CategoryCore,
		Description: "The main component that renders the flow graph. It manages nodes, edges, " +
			"the viewport, and all interaction handlers. Wrap it in an element with explicit " +
			"width and height, since the component fills its parent.",
		Props: []PropDoc{
			{Name: "nodes", Type: "Node[]", Description: "The array of nodes to render (controlled mode)."},
			{Name: "edges", Type: "Edge[]", Description: "The array of edges to render (controlled mode)."},
			{Name: "defaultNodes", Type: "Node[]", Description: "Initial nodes for uncontrolled mode."},
			{Name: "defaultEdges", Type: "Edge[]", Description: "Initial edges for uncontrolled mode."},
			{Name: "onNodesChange", Type: "(changes: NodeChange[]) => void", Description: "Called with node change events; apply them with applyNodeChanges."},
			{Name: "onEdgesChange", Type: "(changes: EdgeChange[]) => void", Description: "Called with edge change events; apply them with applyEdgeChanges."},
			{Name: "onConnect", Type: "(connection: Connection) => void", Description: "Called when a new connection is completed between two handles."},
			{Name: "nodeTypes", Type: "NodeTypes", Description: "Map of custom node type names to components. Define it outside render or memoize it."},
			{Name: "edgeTypes", Type: "EdgeTypes", Description: "Map of custom edge type names to components."},
			{Name: "fitView", Type: "boolean", Description: "Fit the initial viewport to the rendered nodes."},
			{Name: "minZoom", Type: "number", Description: "Lower zoom limit. Defaults to 0.5."},
			{Name: "maxZoom", Type: "number", Description: "Upper zoom limit. Defaults to 2."},
			{Name: "proOptions", Type: "ProOptions", Description: "Options such as hiding the attribution."},
		},
		Usage: `
import { ReactFlow, applyNodeChanges, applyEdgeChanges } from '@xyflow/react';
import '@xyflow/react/dist/style.css';

function Flow() {
  const [nodes, setNodes] = useState(initialNodes);
  const [edges, setEdges] = useState(initialEdges);

  return (
    <div style={{ width: '100vw', height: '100vh' }}>
      <ReactFlow
        nodes={nodes}
        edges={edges}
        onNodesChange={(c) => setNodes((ns) => applyNodeChanges(c, ns))}
        onEdgesChange={(c) => setEdges((es) => applyEdgeChanges(c, es))}
        fitView
      />
    </div>
  );
}`,
	},
	{
		Name:     "Handle",
		Category: CategoryCore,
		Description: "The connection point rendered inside a custom node. Edges start and end " +
			"at handles; a node may render any number of them, distinguished by id.",
		Props: []PropDoc{
			{Name: "type", Type: "'source' | 'target'", Required: true, Description: "Whether connections start or end at this handle."},
			{Name: "position", Type: "Position", Required: true, Description: "Side of the node the handle sits on: Top, Right, Bottom, or Left."},
			{Name: "id", Type: "string", Description: "Distinguishes this handle when the node has several."},
			{Name: "isConnectable", Type: "boolean", Description: "Disables new connections when false."},
			{Name: "isValidConnection", Type: "(connection: Connection) => boolean", Description: "Per-handle connection validation."},
		},
		Usage: `
import { Handle, Position } from '@xyflow/react';

function CustomNode({ data }) {
  return (
    <div className="custom-node">
      <Handle type="target" position={Position.Top} />
      <div>{data.label}</div>
      <Handle type="source" position={Position.Bottom} id="out" />
    </div>
  );
}`,
	},
	{
		Name:     "Background",
		Category: CategoryUI,
		Description: "Renders the canvas background pattern behind the nodes. Supports dots, " +
			"lines, and cross variants, and may be layered by rendering it more than once.",
		Props: []PropDoc{
			{Name: "variant", Type: "BackgroundVariant", Description: "Pattern style: 'dots', 'lines', or 'cross'. Defaults to dots."},
			{Name: "gap", Type: "number | [number, number]", Description: "Spacing between pattern elements. Defaults to 20."},
			{Name: "size", Type: "number", Description: "Size of a single pattern element."},
			{Name: "color", Type: "string", Description: "Pattern color."},
		},
		Usage: `
<ReactFlow nodes={nodes} edges={edges}>
  <Background variant="dots" gap={16} size={1} />
</ReactFlow>`,
	},
	{
		Name:     "MiniMap",
		Category: CategoryUI,
		Description: "A small overview map of the whole graph, rendered in a corner panel. " +
			"Nodes can be colored per-node and the viewport rectangle is draggable.",
		Props: []PropDoc{
			{Name: "nodeColor", Type: "string | (node: Node) => string", Description: "Fill color for minimap nodes."},
			{Name: "nodeStrokeWidth", Type: "number", Description: "Stroke width for minimap nodes."},
			{Name: "pannable", Type: "boolean", Description: "Allow panning the viewport by dragging the minimap."},
			{Name: "zoomable", Type: "boolean", Description: "Allow zooming via the minimap."},
			{Name: "position", Type: "PanelPosition", Description: "Corner placement. Defaults to bottom-right."},
		},
		Usage: `
<ReactFlow nodes={nodes} edges={edges}>
  <MiniMap nodeColor={(n) => (n.type === 'input' ? '#6ede87' : '#ff0072')} pannable zoomable />
</ReactFlow>`,
	},
	{
		Name:     "Controls",
		Category: CategoryUI,
		Description: "The standard control panel with zoom-in, zoom-out, fit-view, and " +
			"lock-interactivity buttons. Extend it with ControlButton children.",
		Props: []PropDoc{
			{Name: "showZoom", Type: "boolean", Description: "Show the zoom buttons. Defaults to true."},
			{Name: "showFitView", Type: "boolean", Description: "Show the fit-view button. Defaults to true."},
			{Name: "showInteractive", Type: "boolean", Description: "Show the lock button. Defaults to true."},
			{Name: "position", Type: "PanelPosition", Description: "Corner placement. Defaults to bottom-left."},
			{Name: "orientation", Type: "'horizontal' | 'vertical'", Description: "Button layout direction."},
		},
		Usage: `
<ReactFlow nodes={nodes} edges={edges}>
  <Controls position="top-right" />
</ReactFlow>`,
	},
	{
		Name:     "ControlButton",
		Category: CategoryUI,
		Description: "A single button rendered inside the Controls panel, used to add custom " +
			"actions next to the built-in ones.",
		Props: []PropDoc{
			{Name: "onClick", Type: "() => void", Description: "Click handler for the custom action."},
			{Name: "title", Type: "string", Description: "Tooltip text."},
		},
		Usage: `
<Controls>
  <ControlButton onClick={() => alert('magic')} title="do magic">
    <MagicIcon />
  </ControlButton>
</Controls>`,
	},
	{
		Name:     "Panel",
		Category: CategoryUI,
		Description: "Positions arbitrary content above the viewport in one of nine fixed " +
			"slots. The MiniMap and Controls components are built on it.",
		Props: []PropDoc{
			{Name: "position", Type: "PanelPosition", Required: true, Description: "One of top-left, top-center, top-right, center-left, center, center-right, bottom-left, bottom-center, bottom-right."},
		},
		Usage: `
<ReactFlow nodes={nodes} edges={edges}>
  <Panel position="top-left">Flow title</Panel>
</ReactFlow>`,
	},
	{
		Name:     "NodeResizer",
		Category: CategoryNodes,
		Description: "Adds resize handles and lines around a custom node so users can resize " +
			"it by dragging. Render it as the first child of the custom node.",
		Props: []PropDoc{
			{Name: "minWidth", Type: "number", Description: "Minimum width the node can be resized to."},
			{Name: "minHeight", Type: "number", Description: "Minimum height the node can be resized to."},
			{Name: "maxWidth", Type: "number", Description: "Maximum width."},
			{Name: "maxHeight", Type: "number", Description: "Maximum height."},
			{Name: "isVisible", Type: "boolean", Description: "Show the resize controls, typically bound to node selection."},
			{Name: "keepAspectRatio", Type: "boolean", Description: "Constrain resizing to the current aspect ratio."},
		},
		Usage: `
function ResizableNode({ data, selected }) {
  return (
    <>
      <NodeResizer isVisible={selected} minWidth={100} minHeight={30} />
      <div style={{ padding: 10 }}>{data.label}</div>
    </>
  );
}`,
	},
	{
		Name:     "NodeToolbar",
		Category: CategoryNodes,
		Description: "Renders a toolbar or tooltip attached to a node. The toolbar does not " +
			"scale with the viewport, so its controls stay readable at any zoom level.",
		Props: []PropDoc{
			{Name: "isVisible", Type: "boolean", Description: "Force visibility instead of showing only when the node is selected."},
			{Name: "position", Type: "Position", Description: "Side of the node to attach to. Defaults to Top."},
			{Name: "offset", Type: "number", Description: "Distance between the node and the toolbar."},
			{Name: "nodeId", Type: "string | string[]", Description: "Attach to other nodes, or to several nodes at once."},
		},
		Usage: `
function NodeWithToolbar({ data }) {
  return (
    <>
      <NodeToolbar isVisible={data.forceToolbarVisible} position={Position.Top}>
        <button>delete</button>
        <button>copy</button>
      </NodeToolbar>
      <div>{data.label}</div>
    </>
  );
}`,
	},
	{
		Name:     "BaseEdge",
		Category: CategoryEdges,
		Description: "The lowest-level edge primitive: renders the edge path, an invisible " +
			"wider interaction path, and an optional label. Custom edges compose it with one " +
			"of the path helpers such as getBezierPath.",
		Props: []PropDoc{
			{Name: "path", Type: "string", Required: true, Description: "SVG path string, usually produced by a path helper."},
			{Name: "labelX", Type: "number", Description: "Label x position."},
			{Name: "labelY", Type: "number", Description: "Label y position."},
			{Name: "markerEnd", Type: "string", Description: "Marker url for the end of the edge."},
			{Name: "interactionWidth", Type: "number", Description: "Width of the invisible interaction path. Defaults to 20."},
		},
		Usage: `
function CustomEdge({ sourceX, sourceY, targetX, targetY }) {
  const [path] = getStraightPath({ sourceX, sourceY, targetX, targetY });
  return <BaseEdge path={path} />;
}`,
	},
	{
		Name:     "EdgeLabelRenderer",
		Category: CategoryEdges,
		Description: "A portal that renders edge labels as HTML divs instead of SVG text, " +
			"which allows fully styled, interactive labels. Labels are positioned with a " +
			"transform and need pointerEvents: all to be clickable.",
		Props: []PropDoc{
			{Name: "children", Type: "ReactNode", Required: true, Description: "The label content to render into the portal."},
		},
		Usage: `
function CustomEdge({ id, sourceX, sourceY, targetX, targetY }) {
  const [path, labelX, labelY] = getBezierPath({ sourceX, sourceY, targetX, targetY });
  return (
    <>
      <BaseEdge id={id} path={path} />
      <EdgeLabelRenderer>
        <div style={{ position: 'absolute', transform: ` + "`translate(-50%, -50%) translate(${labelX}px, ${labelY}px)`" + `, pointerEvents: 'all' }}>
          <button>×</button>
        </div>
      </EdgeLabelRenderer>
    </>
  );
}`,
	},
	{
		Name:     "ViewportPortal",
		Category: CategoryViewport,
		Description: "Renders children into the viewport coordinate system, so the content " +
			"pans and zooms with the graph without being a node or an edge.",
		Props: []PropDoc{
			{Name: "children", Type: "ReactNode", Required: true, Description: "Content positioned in flow coordinates."},
		},
		Usage: `
<ViewportPortal>
  <div style={{ position: 'absolute', transform: 'translate(100px, 100px)' }}>
    Drawn at [100, 100] in flow coordinates
  </div>
</ViewportPortal>`,
	},
}
