package mcp

import (
	"context"
	"log"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type ProbeFunction func(input *ProbeToolInput) (*ProbeToolOutput, error)

type registeredTool struct {
	name        string
	description string
	fn          ProbeFunction
}

// Registry holds the probe tools in registration order.
type Registry struct {
	tools []registeredTool
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(name, description string, fn ProbeFunction) {
	r.tools = append(r.tools, registeredTool{name: name, description: description, fn: fn})
}

func RunServer(registry *Registry) error {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "pysmoke",
		Version: "1.0.0",
	}, nil)

	for _, tool := range registry.tools {
		addProbe(server, tool)
	}

	if err := server.Run(context.Background(), &mcpsdk.StdioTransport{}); err != nil {
		log.Printf("MCP server failed: %v", err)
		return err
	}

	return nil
}

func addProbe(server *mcpsdk.Server, tool registeredTool) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        tool.name,
		Description: tool.description,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input ProbeToolInput) (*mcpsdk.CallToolResult, ProbeToolOutput, error) {
		output, err := tool.fn(&input)
		if err != nil {
			return nil, ProbeToolOutput{}, err
		}
		if output.RunID == "" {
			output.RunID = uuid.NewString()
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: output.Report},
			},
		}, *output, nil
	})
}
