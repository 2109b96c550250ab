package catalog

// ExampleDoc holds one runnable code example.
type ExampleDoc struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Code        string
}

var exampleDocs = []ExampleDoc{
	{
		ID:          "basic-flow",
		Title:       "Basic Flow",
		Description: "A minimal controlled flow with two nodes and one edge, wired up with the state hooks.",
		Tags:        []string{"basics", "controlled", "state"},
		Code: `
import { ReactFlow, useNodesState, useEdgesState, addEdge } from '@xyflow/react';
import '@xyflow/react/dist/style.css';

const initialNodes = [
  { id: '1', position: { x: 0, y: 0 }, data: { label: 'Hello' } },
  { id: '2', position: { x: 0, y: 100 }, data: { label: 'World' } },
];
const initialEdges = [{ id: 'e1-2', source: '1', target: '2' }];

export default function App() {
  const [nodes, , onNodesChange] = useNodesState(initialNodes);
  const [edges, setEdges, onEdgesChange] = useEdgesState(initialEdges);
  const onConnect = (c) => setEdges((eds) => addEdge(c, eds));

  return (
    <div style={{ width: '100vw', height: '100vh' }}>
      <ReactFlow
        nodes={nodes}
        edges={edges}
        onNodesChange={onNodesChange}
        onEdgesChange={onEdgesChange}
        onConnect={onConnect}
        fitView
      />
    </div>
  );
}`,
	},
	{
		ID:          "drag-and-drop",
		Title:       "Drag and Drop",
		Description: "Drag node templates from a sidebar and drop them onto the canvas to create nodes at the drop position.",
		Tags:        []string{"drag", "drop", "sidebar", "interaction"},
		Code: `
import { ReactFlow, useReactFlow, ReactFlowProvider } from '@xyflow/react';

function Flow({ nodes, setNodes }) {
  const { screenToFlowPosition } = useReactFlow();

  const onDrop = (event) => {
    event.preventDefault();
    const type = event.dataTransfer.getData('application/reactflow');
    if (!type) return;

    const position = screenToFlowPosition({ x: event.clientX, y: event.clientY });
    setNodes((ns) => ns.concat({ id: crypto.randomUUID(), type, position, data: { label: type } }));
  };

  return (
    <ReactFlow
      nodes={nodes}
      onDrop={onDrop}
      onDragOver={(e) => { e.preventDefault(); e.dataTransfer.dropEffect = 'move'; }}
      fitView
    />
  );
}

function Sidebar() {
  const onDragStart = (event, nodeType) => {
    event.dataTransfer.setData('application/reactflow', nodeType);
    event.dataTransfer.effectAllowed = 'move';
  };
  return <aside><div draggable onDragStart={(e) => onDragStart(e, 'default')}>Node</div></aside>;
}`,
	},
	{
		ID:          "custom-node",
		Title:       "Custom Node",
		Description: "A custom node component with an input field and labeled handles, registered through nodeTypes.",
		Tags:        []string{"custom", "node", "handle", "nodeTypes"},
		Code: `
import { Handle, Position } from '@xyflow/react';

function TextUpdaterNode({ data, isConnectable }) {
  return (
    <div className="text-updater-node">
      <Handle type="target" position={Position.Top} isConnectable={isConnectable} />
      <label>
        text:
        <input onChange={(e) => data.onChange(e.target.value)} className="nodrag" />
      </label>
      <Handle type="source" position={Position.Bottom} id="out" isConnectable={isConnectable} />
    </div>
  );
}

const nodeTypes = { textUpdater: TextUpdaterNode };
// <ReactFlow nodeTypes={nodeTypes} ... />`,
	},
	{
		ID:          "custom-edge",
		Title:       "Custom Edge",
		Description: "A custom edge built from BaseEdge and a path helper, with an HTML delete button placed through EdgeLabelRenderer.",
		Tags:        []string{"custom", "edge", "label", "edgeTypes"},
		Code: `
import { BaseEdge, EdgeLabelRenderer, getBezierPath, useReactFlow } from '@xyflow/react';

function ButtonEdge({ id, sourceX, sourceY, targetX, targetY }) {
  const { setEdges } = useReactFlow();
  const [edgePath, labelX, labelY] = getBezierPath({ sourceX, sourceY, targetX, targetY });

  return (
    <>
      <BaseEdge id={id} path={edgePath} />
      <EdgeLabelRenderer>
        <button
          style={{ position: 'absolute', transform: ` + "`translate(-50%, -50%) translate(${labelX}px, ${labelY}px)`" + `, pointerEvents: 'all' }}
          onClick={() => setEdges((es) => es.filter((e) => e.id !== id))}
        >
          ×
        </button>
      </EdgeLabelRenderer>
    </>
  );
}`,
	},
	{
		ID:          "connection-validation",
		Title:       "Connection Validation",
		Description: "Restrict which connections users may draw with isValidConnection, rejecting edges that do not satisfy a predicate.",
		Tags:        []string{"validation", "connection", "handles"},
		Code: `
const isValidConnection = (connection) => connection.target !== connection.source;

<ReactFlow
  nodes={nodes}
  edges={edges}
  isValidConnection={isValidConnection}
/>`,
	},
	{
		ID:          "subflow",
		Title:       "Subflow",
		Description: "Group nodes inside a parent node with parentId, constraining children to the parent's bounds with extent.",
		Tags:        []string{"subflow", "group", "parent", "nesting"},
		Code: `
const nodes = [
  { id: 'A', type: 'group', position: { x: 0, y: 0 }, style: { width: 300, height: 200 } },
  { id: 'A-1', parentId: 'A', extent: 'parent', position: { x: 10, y: 10 }, data: { label: 'Child 1' } },
  { id: 'A-2', parentId: 'A', extent: 'parent', position: { x: 10, y: 90 }, data: { label: 'Child 2' } },
];`,
	},
	{
		ID:          "save-restore",
		Title:       "Save and Restore",
		Description: "Serialize the flow with toObject and restore it later, including the viewport.",
		Tags:        []string{"save", "restore", "persistence", "toObject"},
		Code: `
const { toObject, setViewport } = useReactFlow();

const onSave = () => {
  localStorage.setItem('flow', JSON.stringify(toObject()));
};

const onRestore = () => {
  const flow = JSON.parse(localStorage.getItem('flow'));
  if (flow) {
    setNodes(flow.nodes);
    setEdges(flow.edges);
    setViewport(flow.viewport);
  }
};`,
	},
	{
		ID:          "auto-layout",
		Title:       "Auto Layout",
		Description: "Lay out nodes automatically with dagre and write the computed positions back onto the node array.",
		Tags:        []string{"layout", "dagre", "layouting"},
		Code: `
import dagre from '@dagrejs/dagre';

function layout(nodes, edges, direction = 'TB') {
  const g = new dagre.graphlib.Graph().setDefaultEdgeLabel(() => ({}));
  g.setGraph({ rankdir: direction });

  nodes.forEach((n) => g.setNode(n.id, { width: 172, height: 36 }));
  edges.forEach((e) => g.setEdge(e.source, e.target));
  dagre.layout(g);

  return nodes.map((n) => {
    const { x, y } = g.node(n.id);
    return { ...n, position: { x: x - 86, y: y - 18 } };
  });
}`,
	},
	{
		ID:          "minimap-overview",
		Title:       "MiniMap Overview",
		Description: "Add the MiniMap, Controls, and Background helpers for navigating a large graph.",
		Tags:        []string{"minimap", "controls", "background", "navigation"},
		Code: `
<ReactFlow nodes={nodes} edges={edges} fitView>
  <MiniMap nodeColor={(n) => n.style?.background ?? '#eee'} pannable zoomable />
  <Controls />
  <Background variant="dots" gap={12} />
</ReactFlow>`,
	},
	{
		ID:          "context-menu",
		Title:       "Context Menu",
		Description: "Open a custom context menu on node right-click using onNodeContextMenu and a Panel-positioned menu.",
		Tags:        []string{"context-menu", "interaction", "menu"},
		Code: `
const [menu, setMenu] = useState(null);

const onNodeContextMenu = useCallback((event, node) => {
  event.preventDefault();
  setMenu({ id: node.id, top: event.clientY, left: event.clientX });
}, []);

<ReactFlow
  nodes={nodes}
  edges={edges}
  onNodeContextMenu={onNodeContextMenu}
  onPaneClick={() => setMenu(null)}
>
  {menu && <ContextMenu {...menu} />}
</ReactFlow>`,
	},
}
